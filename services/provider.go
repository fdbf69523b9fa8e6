package services

import (
	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/store"
)

// ProviderService handles the "become a provider" flow and its inverse.
// Creating a provider promotes the owning user to the provider role;
// deleting one demotes them back to customer.
type ProviderService struct {
	Providers store.ProviderStore
	Users     store.UserStore
}

func NewProviderService(s *store.Stores) *ProviderService {
	return &ProviderService{Providers: s.Providers, Users: s.Users}
}

type CreateProviderInput struct {
	BusinessName string `json:"business_name" validate:"required"`
	BusinessType string `json:"business_type" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Website      string `json:"website"`
}

func (s *ProviderService) Create(actorID uint, in CreateProviderInput) (*models.Provider, error) {
	existing, err := s.Providers.GetByUserID(actorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user is already a provider")
	}

	provider := &models.Provider{
		UserID:       actorID,
		BusinessName: in.BusinessName,
		BusinessType: in.BusinessType,
		Description:  in.Description,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Website:      in.Website,
	}
	if err := s.Providers.Create(provider); err != nil {
		return nil, err
	}
	if err := s.Users.SetRole(actorID, models.RoleProvider); err != nil {
		return nil, err
	}
	return provider, nil
}

func (s *ProviderService) Update(actor policy.Actor, id uint, payload map[string]any) (*models.Provider, error) {
	provider, err := s.Providers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageProvider(actor, provider.UserID) {
		return nil, apperr.Forbidden("not authorized to update this provider")
	}

	// Ownership and derived rating fields are not writable through updates.
	for _, k := range []string{"id", "user_id", "average_rating", "review_count"} {
		delete(payload, k)
	}
	if len(payload) > 0 {
		if err := s.Providers.Update(id, payload); err != nil {
			return nil, err
		}
	}
	return s.Providers.GetByID(id)
}

// Delete removes the provider and reverts the owning user to customer.
// Services referencing the provider are left orphaned.
func (s *ProviderService) Delete(actor policy.Actor, id uint) error {
	provider, err := s.Providers.GetByID(id)
	if err != nil {
		return err
	}
	if !policy.CanManageProvider(actor, provider.UserID) {
		return apperr.Forbidden("not authorized to delete this provider")
	}
	if err := s.Providers.Delete(id); err != nil {
		return err
	}
	return s.Users.SetRole(provider.UserID, models.RoleCustomer)
}
