package forms

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

// UserLatency: the user form saves without an artificial delay.
const UserLatency = 0

const (
	msgMissingRequired = "Please fill in all required fields."
	msgInvalidEmail    = "Please enter a valid email address."
	msgInvalidRole     = "Please select a valid role."
	msgPasswordTooLong = "Password must be at most 72 bytes."
)

type UserValues struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Role     string `json:"role" form:"role"`
	IsActive bool   `json:"isActive" form:"isActive"`
	Password string `json:"password" form:"password"`
}

// userPayload is what reaches the diagnostic log; the initial password only
// ever appears hashed.
type userPayload struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// UserForm is the simpler form: it reports problems as one error
// notification instead of inline messages.
type UserForm struct {
	existing *models.User
	validate *validator.Validate
	*submitter
}

func NewUserForm(existing *models.User, deps Deps, cb Callbacks) *UserForm {
	return &UserForm{
		existing:  existing,
		validate:  newValidator(),
		submitter: newSubmitter("user", deps, cb),
	}
}

func (f *UserForm) Mode() Mode {
	return modeOf(f.existing != nil)
}

func (f *UserForm) Existing() *models.User {
	return f.existing
}

func (f *UserForm) Defaults() UserValues {
	u := f.existing
	if u == nil {
		return UserValues{Role: string(models.RolePatient), IsActive: true}
	}
	return UserValues{
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.Status != models.StatusInactive,
	}
}

// Validate returns a ValidationError with a form-level message only.
func (f *UserForm) Validate(v UserValues) error {
	switch {
	case v.Name == "" || v.Email == "" || (f.existing == nil && v.Password == ""):
		return &ValidationError{Message: msgMissingRequired}
	case f.validate.Var(v.Email, "email") != nil:
		return &ValidationError{Message: msgInvalidEmail}
	case !models.Role(v.Role).Valid():
		return &ValidationError{Message: msgInvalidRole}
	case len(v.Password) > 72:
		return &ValidationError{Message: msgPasswordTooLong}
	}
	return nil
}

func (f *UserForm) Submit(ctx context.Context, v UserValues) (*Submission, error) {
	if v.Role == "" {
		v.Role = string(models.RolePatient)
	}

	if err := f.Validate(v); err != nil {
		f.observe(OutcomeInvalid)
		ve, _ := AsValidation(err)
		if nerr := f.deps.Notifier.Notify(ctx, notify.Error("Error", ve.Message)); nerr != nil {
			f.deps.Logger.Error("failed to publish notification", "entity", "user", "error", nerr)
		}
		return nil, err
	}
	if err := f.begin(); err != nil {
		return nil, err
	}

	payload := userPayload{
		Name:   v.Name,
		Email:  v.Email,
		Role:   v.Role,
		Status: string(models.StatusFromActive(v.IsActive)),
	}
	if f.existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(v.Password), bcrypt.DefaultCost)
		if err != nil {
			f.release()
			return nil, err
		}
		payload.PasswordHash = string(hash)
	} else {
		payload.ID = f.existing.ID
	}

	description := "User created successfully"
	if f.existing != nil {
		description = "User updated successfully"
	}

	n := notify.Success("Success", description)
	return f.start(ctx, job{entityID: payload.ID, payload: payload, notification: n}), nil
}

func (f *UserForm) Cancel(ctx context.Context) {
	id := ""
	if f.existing != nil {
		id = f.existing.ID
	}
	f.cancel(ctx, id)
}
