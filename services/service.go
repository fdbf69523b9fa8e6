package services

import (
	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/store"
)

// ServiceService manages a provider's service listings. The provider is
// always resolved from the acting user, never taken from the request.
type ServiceService struct {
	Services  store.ServiceStore
	Providers store.ProviderStore
}

func NewServiceService(s *store.Stores) *ServiceService {
	return &ServiceService{Services: s.Services, Providers: s.Providers}
}

type CreateServiceInput struct {
	CategoryID  uint     `json:"category_id" validate:"required"`
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	PriceType   string   `json:"price_type" validate:"omitempty,oneof=fixed hourly daily custom"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	IsRemote    bool     `json:"is_remote"`
}

func (s *ServiceService) Create(actorID uint, in CreateServiceInput) (*models.Service, error) {
	provider, err := s.Providers.GetByUserID(actorID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperr.NotFound("provider for user", actorID)
	}

	svc := &models.Service{
		ProviderID:  provider.ID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		PriceType:   in.PriceType,
		Images:      in.Images,
		Features:    in.Features,
		IsRemote:    in.IsRemote,
		Active:      true,
	}
	if err := s.Services.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *ServiceService) Update(actor policy.Actor, id uint, payload map[string]any) (*models.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	actorProviderID, err := s.actorProviderID(actor)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageService(actor, svc.ProviderID, actorProviderID) {
		return nil, apperr.Forbidden("not authorized to update this service")
	}

	for _, k := range []string{"id", "provider_id", "average_rating", "review_count"} {
		delete(payload, k)
	}
	if len(payload) > 0 {
		if err := s.Services.Update(id, payload); err != nil {
			return nil, err
		}
	}
	return s.Services.GetByID(id)
}

func (s *ServiceService) Delete(actor policy.Actor, id uint) error {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return err
	}
	actorProviderID, err := s.actorProviderID(actor)
	if err != nil {
		return err
	}
	if !policy.CanManageService(actor, svc.ProviderID, actorProviderID) {
		return apperr.Forbidden("not authorized to delete this service")
	}
	return s.Services.Delete(id)
}

func (s *ServiceService) actorProviderID(actor policy.Actor) (uint, error) {
	if actor.Role != models.RoleProvider {
		return 0, nil
	}
	p, err := s.Providers.GetByUserID(actor.ID)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, nil
	}
	return p.ID, nil
}
