package schema

import (
	"time"

	"shop-service/internal/model"

	"github.com/go-playground/validator/v10"
)

// Shared email-format checker. Fields are enumerated explicitly in each
// Validate method; the library only supplies the RFC email check.
var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

// SignUpIn is the signup request payload.
type SignUpIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks presence of all fields and the email format.
func (in *SignUpIn) Validate() FieldErrors {
	errs := FieldErrors{}
	if in.Name == "" {
		errs.Add("name", msgRequired)
	}
	if in.Email == "" {
		errs.Add("email", msgRequired)
	} else if !validEmail(in.Email) {
		errs.Add("email", msgInvalidEmail)
	}
	if in.Password == "" {
		errs.Add("password", msgRequired)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginIn is the login request payload. Only presence is checked here;
// credential verification happens in the mutation.
type LoginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginIn) Validate() FieldErrors {
	errs := FieldErrors{}
	if in.Email == "" {
		errs.Add("email", msgRequired)
	}
	if in.Password == "" {
		errs.Add("password", msgRequired)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserOut is the outbound projection of a user. The password hash is never
// serialized.
type UserOut struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserOut shapes a user entity for output.
func NewUserOut(u model.User) UserOut {
	return UserOut{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
