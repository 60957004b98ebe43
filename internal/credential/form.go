package credential

import (
	"regexp"
	"strings"
)

// Mode selects which credential form is active.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// Field identifies one input of the credential form.
type Field string

const (
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirm_password"
	FieldDisplayName     Field = "display_name"
	FieldPhone           Field = "phone"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// loginFields and registerFields are the mode-relevant inputs in display
// order.
var (
	loginFields    = []Field{FieldEmail, FieldPassword}
	registerFields = []Field{FieldDisplayName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword}
)

// Form holds transient login/registration input. Validation runs when a
// field loses focus (Blur); editing a field clears its error immediately.
type Form struct {
	mode   Mode
	values map[Field]string
	errors map[Field]string
}

// NewForm creates an empty form in the given mode.
func NewForm(mode Mode) *Form {
	return &Form{
		mode:   mode,
		values: make(map[Field]string),
		errors: make(map[Field]string),
	}
}

// Mode returns the active mode.
func (f *Form) Mode() Mode {
	return f.mode
}

// SetMode switches modes, dropping values and errors for fields not relevant
// to the new mode.
func (f *Form) SetMode(mode Mode) {
	if mode == f.mode {
		return
	}
	f.mode = mode
	relevant := make(map[Field]bool)
	for _, field := range f.Fields() {
		relevant[field] = true
	}
	for field := range f.values {
		if !relevant[field] {
			delete(f.values, field)
			delete(f.errors, field)
		}
	}
}

// Fields returns the mode-relevant fields in display order.
func (f *Form) Fields() []Field {
	if f.mode == ModeRegister {
		return registerFields
	}
	return loginFields
}

// Set records an edit and clears any error on the edited field.
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
	delete(f.errors, field)
	// Re-typing the password invalidates a previously confirmed match.
	if field == FieldPassword {
		delete(f.errors, FieldConfirmPassword)
	}
}

// Value returns the current input for a field.
func (f *Form) Value(field Field) string {
	return f.values[field]
}

// Blur validates a field as it loses focus, recording an error message when
// the input is malformed. Empty fields are not flagged on blur; emptiness
// only blocks submission.
func (f *Form) Blur(field Field) {
	value := f.values[field]
	if value == "" {
		return
	}
	if msg := f.validate(field, value); msg != "" {
		f.errors[field] = msg
	}
}

// Error returns the recorded validation message for a field, or "".
func (f *Form) Error(field Field) string {
	return f.errors[field]
}

func (f *Form) validate(field Field, value string) string {
	switch field {
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return "enter a valid email address"
		}
	case FieldPhone:
		if !phonePattern.MatchString(value) {
			return "phone number must be exactly 10 digits"
		}
	case FieldConfirmPassword:
		if value != f.values[FieldPassword] {
			return "passwords do not match"
		}
	}
	return ""
}

// Submittable reports whether the form may be submitted: every mode-relevant
// field is non-empty and none fails validation.
func (f *Form) Submittable() bool {
	for _, field := range f.Fields() {
		value := strings.TrimSpace(f.values[field])
		if value == "" {
			return false
		}
		if f.errors[field] != "" {
			return false
		}
		if f.validate(field, f.values[field]) != "" {
			return false
		}
	}
	return true
}

// Reset clears all values and errors, keeping the mode.
func (f *Form) Reset() {
	f.values = make(map[Field]string)
	f.errors = make(map[Field]string)
}
