package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

func strPtr(s string) *string { return &s }

func TestLoginCredentials(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		creds   models.LoginCredentials
		wantErr string
	}{
		{
			name:  "valid",
			creds: models.LoginCredentials{Username: "alice", Password: "longenough"},
		},
		{
			name:    "username too short",
			creds:   models.LoginCredentials{Username: "ab", Password: "longenough"},
			wantErr: "username must be at least 3 characters",
		},
		{
			name:    "username bad characters",
			creds:   models.LoginCredentials{Username: "al ice", Password: "longenough"},
			wantErr: "username may contain only letters, numbers, - and _",
		},
		{
			name:    "password too short",
			creds:   models.LoginCredentials{Username: "alice", Password: "short"},
			wantErr: "password must be at least 8 characters",
		},
		{
			name:    "missing username",
			creds:   models.LoginCredentials{Password: "longenough"},
			wantErr: "username is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.creds)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRegisterCredentials_PasswordStrength(t *testing.T) {
	v := New()

	base := models.RegisterCredentials{
		Email:    "alice@example.org",
		Username: "alice",
	}

	weak := []string{"alllower1!", "ALLUPPER1!", "NoDigits!!", "NoSpecial11"}
	for _, pw := range weak {
		base.Password = pw
		assert.Error(t, v.Struct(base), "password %q should be rejected", pw)
	}

	base.Password = "Str0ng!pass"
	assert.NoError(t, v.Struct(base))
}

func TestRegisterCredentials_TenantOptional(t *testing.T) {
	v := New()

	creds := models.RegisterCredentials{
		Email:    "alice@example.org",
		Username: "alice",
		Password: "Str0ng!pass",
	}
	assert.NoError(t, v.Struct(creds), "tenant name may be absent")

	creds.TenantName = "x"
	assert.Error(t, v.Struct(creds), "one-char tenant name must be rejected")

	creds.TenantName = "acme-corp"
	assert.NoError(t, v.Struct(creds))
}

func TestContactCreate(t *testing.T) {
	v := New()

	valid := models.ContactCreate{
		FirstName: "John",
		LastName:  "Doe",
		Phone:     "+1 555 123 4567",
		Address:   "123 Main St",
	}
	assert.NoError(t, v.Struct(valid))

	missingPhone := valid
	missingPhone.Phone = ""
	assert.EqualError(t, v.Struct(missingPhone), "phone is required")

	badPhone := valid
	badPhone.Phone = "not-a-phone"
	assert.EqualError(t, v.Struct(badPhone), "phone is not a valid phone number")

	badEmail := valid
	badEmail.Email = strPtr("nope")
	assert.EqualError(t, v.Struct(badEmail), "email must be a valid email")

	validEmail := valid
	validEmail.Email = strPtr("john@example.org")
	assert.NoError(t, v.Struct(validEmail))
}

func TestContactUpdate_EmptyPatchIsValid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(models.ContactUpdate{}))

	bad := models.ContactUpdate{FirstName: strPtr("")}
	assert.Error(t, v.Struct(bad), "explicit empty first_name must be rejected")
}
