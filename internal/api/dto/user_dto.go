package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
)

const birthDateLayout = "2006-01-02"

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Phone           string `json:"phone"`
	BirthDate       string `json:"birth_date"`
	Role            string `json:"role"`
}

// Validate applies field-level rules. Cross-field rules (password confirm)
// and uniqueness live in the registration service.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 128)),
		validation.Field(&r.PasswordConfirm, validation.Required),
		validation.Field(&r.Phone, validation.Length(0, 20)),
		validation.Field(&r.BirthDate, validation.Date(birthDateLayout)),
		validation.Field(&r.Role, validation.In(
			string(domain.RoleTeacher),
			string(domain.RoleStudent),
			string(domain.RoleParent),
			string(domain.RoleOwner),
		)),
	)
}

// BirthDateValue parses the optional birth date.
func (r RegisterRequest) BirthDateValue() (*time.Time, error) {
	if r.BirthDate == "" {
		return nil, nil
	}
	parsed, err := time.Parse(birthDateLayout, r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies field-level rules.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// RefreshRequest is the payload for POST /token/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// Validate applies field-level rules.
func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Refresh, validation.Required),
	)
}

// DecisionRequest is the payload for POST /admin/approve-user/:id.
type DecisionRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// Validate only requires action to be present; the moderation service owns
// the approve/reject vocabulary.
func (r DecisionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action, validation.Required),
	)
}

// UserResponse is the public profile shape. Credential material never
// appears here.
type UserResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	Phone     string  `json:"phone"`
	BirthDate *string `json:"birth_date"`
}

// NewUserResponse maps a domain user to its public profile.
func NewUserResponse(user *domain.User) UserResponse {
	var birthDate *string
	if user.BirthDate != nil {
		formatted := user.BirthDate.Format(birthDateLayout)
		birthDate = &formatted
	}
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Phone:     user.Phone,
		BirthDate: birthDate,
	}
}

// NewUserResponses maps a slice of users.
func NewUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
