package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		FirstName:       "Aziz",
		LastName:        "Karimov",
		Email:           "aziz@example.com",
		Password:        "p1",
		PasswordConfirm: "p1",
		Phone:           "+998901234567",
		BirthDate:       "2001-05-20",
		Role:            "student",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(*RegisterRequest) {}},
		{name: "missing email", mutate: func(r *RegisterRequest) { r.Email = "" }, wantErr: true},
		{name: "bad email", mutate: func(r *RegisterRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "missing first name", mutate: func(r *RegisterRequest) { r.FirstName = "" }, wantErr: true},
		{name: "missing password", mutate: func(r *RegisterRequest) { r.Password = "" }, wantErr: true},
		{name: "unknown role", mutate: func(r *RegisterRequest) { r.Role = "janitor" }, wantErr: true},
		{name: "role optional", mutate: func(r *RegisterRequest) { r.Role = "" }},
		{name: "bad birth date", mutate: func(r *RegisterRequest) { r.BirthDate = "20-05-2001" }, wantErr: true},
		{name: "birth date optional", mutate: func(r *RegisterRequest) { r.BirthDate = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegisterRequest()
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequest_BirthDateValue(t *testing.T) {
	t.Parallel()

	req := validRegisterRequest()
	parsed, err := req.BirthDateValue()
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, 2001, parsed.Year())

	req.BirthDate = ""
	parsed, err = req.BirthDateValue()
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestNewUserResponse_OmitsCredentialMaterial(t *testing.T) {
	t.Parallel()

	birth := time.Date(2001, 5, 20, 0, 0, 0, 0, time.UTC)
	user := &domain.User{
		ID:           3,
		Username:     "a@x.com",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		FirstName:    "Aziz",
		LastName:     "Karimov",
		Phone:        "+998901234567",
		BirthDate:    &birth,
		Role:         domain.RoleStudent,
		Status:       domain.StatusPending,
	}

	resp := NewUserResponse(user)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "2001-05-20", *resp.BirthDate)
}
