package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRegister(f *Form) {
	f.Set(FieldDisplayName, "Ada Lovelace")
	f.Set(FieldEmail, "ada@example.com")
	f.Set(FieldPhone, "0123456789")
	f.Set(FieldPassword, "hunter22")
	f.Set(FieldConfirmPassword, "hunter22")
}

func TestForm_SubmittableLogin(t *testing.T) {
	f := NewForm(ModeLogin)
	assert.False(t, f.Submittable(), "empty form is never submittable")

	f.Set(FieldEmail, "ada@example.com")
	assert.False(t, f.Submittable(), "password still missing")

	f.Set(FieldPassword, "hunter22")
	assert.True(t, f.Submittable())

	f.Set(FieldEmail, "not-an-email")
	assert.False(t, f.Submittable(), "malformed email blocks submission even before blur")
}

func TestForm_SubmittableRegister(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Form)
		enabled bool
	}{
		{"all valid", func(f *Form) {}, true},
		{"nine digit phone", func(f *Form) { f.Set(FieldPhone, "012345678") }, false},
		{"eleven digit phone", func(f *Form) { f.Set(FieldPhone, "01234567890") }, false},
		{"phone with letters", func(f *Form) { f.Set(FieldPhone, "01234abcde") }, false},
		{"mismatched confirmation", func(f *Form) { f.Set(FieldConfirmPassword, "different") }, false},
		{"empty display name", func(f *Form) { f.Set(FieldDisplayName, "") }, false},
		{"email without tld", func(f *Form) { f.Set(FieldEmail, "ada@example") }, false},
		{"email without at", func(f *Form) { f.Set(FieldEmail, "ada.example.com") }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewForm(ModeRegister)
			fillRegister(f)
			tc.mutate(f)
			assert.Equal(t, tc.enabled, f.Submittable())
		})
	}
}

func TestForm_BlurValidation(t *testing.T) {
	f := NewForm(ModeRegister)

	f.Set(FieldEmail, "nope")
	assert.Empty(t, f.Error(FieldEmail), "no error before blur")

	f.Blur(FieldEmail)
	assert.NotEmpty(t, f.Error(FieldEmail), "blur records the error")

	// The next edit clears the error immediately.
	f.Set(FieldEmail, "nope2")
	assert.Empty(t, f.Error(FieldEmail))
}

func TestForm_BlurEmptyFieldNotFlagged(t *testing.T) {
	f := NewForm(ModeLogin)
	f.Blur(FieldEmail)
	assert.Empty(t, f.Error(FieldEmail), "emptiness blocks submit but is not an inline error")
}

func TestForm_ConfirmPasswordTracksPassword(t *testing.T) {
	f := NewForm(ModeRegister)
	f.Set(FieldPassword, "one")
	f.Set(FieldConfirmPassword, "two")
	f.Blur(FieldConfirmPassword)
	assert.NotEmpty(t, f.Error(FieldConfirmPassword))

	// Fixing the password clears the stale mismatch error.
	f.Set(FieldPassword, "two")
	assert.Empty(t, f.Error(FieldConfirmPassword))
}

func TestForm_ModeSwitchDropsIrrelevantFields(t *testing.T) {
	f := NewForm(ModeRegister)
	fillRegister(f)
	f.Blur(FieldPhone)

	f.SetMode(ModeLogin)
	assert.Empty(t, f.Value(FieldPhone))
	assert.Empty(t, f.Value(FieldDisplayName))
	assert.Empty(t, f.Value(FieldConfirmPassword))
	assert.Equal(t, "ada@example.com", f.Value(FieldEmail), "shared fields survive the switch")

	// Switching back must not resurrect the dropped values.
	f.SetMode(ModeRegister)
	assert.Empty(t, f.Value(FieldPhone))
}

func TestForm_Reset(t *testing.T) {
	f := NewForm(ModeLogin)
	f.Set(FieldEmail, "x")
	f.Blur(FieldEmail)
	f.Reset()
	assert.Empty(t, f.Value(FieldEmail))
	assert.Empty(t, f.Error(FieldEmail))
	assert.Equal(t, ModeLogin, f.Mode())
}
