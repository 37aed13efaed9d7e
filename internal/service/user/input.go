package user

import "github.com/heartmarshall/photo-curation-backend/internal/domain"

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Username string
	Email    string
}

// Validate checks username and email independently and collects all errors.
func (i CreateUserInput) Validate() error {
	if errs := domain.ValidateNewUserDetails(i.Username, i.Email); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
