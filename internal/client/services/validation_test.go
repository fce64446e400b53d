package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		user, pw string
		field    string
	}{
		{"ok", "ann", "pw", ""},
		{"missing username", "", "pw", "username"},
		{"blank username", "   ", "pw", "username"},
		{"missing password", "ann", "", "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.user, tt.pw)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	valid := Registration{Email: "ann@example.com", Username: "ann", Password: "pw", ConfirmPassword: "pw"}

	tests := []struct {
		name  string
		edit  func(r *Registration)
		field string
	}{
		{"ok", func(*Registration) {}, ""},
		{"missing email", func(r *Registration) { r.Email = "" }, "email"},
		{"missing username", func(r *Registration) { r.Username = "" }, "username"},
		{"missing password", func(r *Registration) { r.Password = ""; r.ConfirmPassword = "" }, "password"},
		{"no at sign", func(r *Registration) { r.Email = "ann.example.com" }, "email"},
		{"short tld", func(r *Registration) { r.Email = "ann@example.c" }, "email"},
		{"space in email", func(r *Registration) { r.Email = "an n@example.com" }, "email"},
		{"plus address ok", func(r *Registration) { r.Email = "ann+geo@mail.example.org" }, ""},
		{"mismatch", func(r *Registration) { r.ConfirmPassword = "pw2" }, "confirm_password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.edit(&r)
			err := ValidateRegistration(r)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
