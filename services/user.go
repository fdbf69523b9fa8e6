package services

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/store"
)

// UserService covers admin user management and the self-service password
// change. Role changes never happen here; they flow through the provider
// create/delete operations only.
type UserService struct {
	Users store.UserStore
}

func NewUserService(s *store.Stores) *UserService {
	return &UserService{Users: s.Users}
}

func (s *UserService) Get(actor policy.Actor, id uint) (*models.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, apperr.Forbidden("only admins can manage users")
	}
	return s.Users.GetByID(id)
}

// Update applies an admin edit. Credentials, role and the derived balance
// are not writable through this path.
func (s *UserService) Update(actor policy.Actor, id uint, payload map[string]any) (*models.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, apperr.Forbidden("only admins can manage users")
	}
	if _, err := s.Users.GetByID(id); err != nil {
		return nil, err
	}

	for _, k := range []string{"id", "password", "role", "digital_currency"} {
		delete(payload, k)
	}
	if len(payload) > 0 {
		if err := s.Users.Update(id, payload); err != nil {
			return nil, err
		}
	}
	return s.Users.GetByID(id)
}

func (s *UserService) Delete(actor policy.Actor, id uint) error {
	if !policy.CanManageUsers(actor) {
		return apperr.Forbidden("only admins can manage users")
	}
	if _, err := s.Users.GetByID(id); err != nil {
		return err
	}
	return s.Users.Delete(id)
}

// ChangePassword verifies the current password before storing the new hash.
func (s *UserService) ChangePassword(userID uint, current, next string) error {
	if len(next) < 6 {
		return apperr.Validation("new_password", "password must be at least 6 characters")
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return err
	}
	// OAuth-only accounts carry no hash and have nothing to change.
	if user.Password == "" {
		return apperr.Forbidden("password login is not enabled for this account")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return apperr.Forbidden("current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.Update(userID, map[string]any{"password": string(hashed)})
}
