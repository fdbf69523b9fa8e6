package services

import (
	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/store"
)

// CategoryService covers admin-managed categories. All writes go through the
// model's save path so the slug stays derived from the name.
type CategoryService struct {
	Categories store.CategoryStore
}

func NewCategoryService(s *store.Stores) *CategoryService {
	return &CategoryService{Categories: s.Categories}
}

type CreateCategoryInput struct {
	Name          string               `json:"name" validate:"required,max=50"`
	Description   string               `json:"description" validate:"required"`
	Icon          string               `json:"icon"`
	Image         string               `json:"image"`
	ParentID      *uint                `json:"parent_id"`
	Subcategories []models.Subcategory `json:"subcategories"`
}

func (s *CategoryService) Create(actor policy.Actor, in CreateCategoryInput) (*models.Category, error) {
	if !policy.CanManageCategories(actor) {
		return nil, apperr.Forbidden("only admins can manage categories")
	}
	category := &models.Category{
		Name:          in.Name,
		Description:   in.Description,
		Icon:          in.Icon,
		Image:         in.Image,
		ParentID:      in.ParentID,
		Subcategories: in.Subcategories,
	}
	if err := s.Categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(actor policy.Actor, id uint, in CreateCategoryInput) (*models.Category, error) {
	if !policy.CanManageCategories(actor) {
		return nil, apperr.Forbidden("only admins can manage categories")
	}
	category, err := s.Categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Description = in.Description
	category.Icon = in.Icon
	category.Image = in.Image
	category.ParentID = in.ParentID
	category.Subcategories = in.Subcategories
	if err := s.Categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(actor policy.Actor, id uint) error {
	if !policy.CanManageCategories(actor) {
		return apperr.Forbidden("only admins can manage categories")
	}
	if _, err := s.Categories.GetByID(id); err != nil {
		return err
	}
	return s.Categories.Delete(id)
}
