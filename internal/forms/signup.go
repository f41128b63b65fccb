package forms

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field names an input on the sign-up form.
type Field string

const (
	FirstName       Field = "firstName"
	LastName        Field = "lastName"
	Username        Field = "username"
	Email           Field = "email"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
)

// SignUpFields returns the sign-up inputs in focus order.
func SignUpFields() []Field {
	return []Field{FirstName, LastName, Username, Email, Password, ConfirmPassword}
}

func (f Field) Label() string {
	switch f {
	case FirstName:
		return "First name"
	case LastName:
		return "Last name"
	case Username:
		return "Terminal username"
	case Email:
		return "Email"
	case Password:
		return "Password"
	case ConfirmPassword:
		return "Confirm password"
	}
	return string(f)
}

// Secret reports whether the field holds a password.
func (f Field) Secret() bool {
	return f == Password || f == ConfirmPassword
}

// ErrorKind classifies a field validation failure.
type ErrorKind string

const (
	KindRequired      ErrorKind = "required"
	KindInvalidFormat ErrorKind = "invalid format"
	KindTooShort      ErrorKind = "too short"
	KindMismatch      ErrorKind = "mismatch"
	// KindRejected marks an error attached by the registration service.
	KindRejected ErrorKind = "rejected"
)

// FieldError is a user-visible, field-scoped validation failure.
type FieldError struct {
	Field   Field
	Kind    ErrorKind
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// ErrorMap maps a field to its current error.
type ErrorMap map[Field]*FieldError

func (m ErrorMap) add(field Field, kind ErrorKind, msg string) {
	m[field] = &FieldError{Field: field, Kind: kind, Message: msg}
}

// Message returns the message recorded for field, or "".
func (m ErrorMap) Message(field Field) string {
	if e, ok := m[field]; ok && e != nil {
		return e.Message
	}
	return ""
}

// SignUpForm is the registration form snapshot plus its recorded errors.
type SignUpForm struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string

	Errors     ErrorMap
	Submitting bool
}

func (f SignUpForm) Value(field Field) string {
	switch field {
	case FirstName:
		return f.FirstName
	case LastName:
		return f.LastName
	case Username:
		return f.Username
	case Email:
		return f.Email
	case Password:
		return f.Password
	case ConfirmPassword:
		return f.ConfirmPassword
	}
	return ""
}

// UpdateField sets field and clears the error recorded for it. Errors on
// other fields are left alone.
func (f *SignUpForm) UpdateField(field Field, value string) {
	switch field {
	case FirstName:
		f.FirstName = value
	case LastName:
		f.LastName = value
	case Username:
		f.Username = value
	case Email:
		f.Email = value
	case Password:
		f.Password = value
	case ConfirmPassword:
		f.ConfirmPassword = value
	default:
		return
	}
	delete(f.Errors, field)
}

// Validate checks every rule against the current snapshot. All checks run;
// none short-circuit the others.
func (f SignUpForm) Validate() ErrorMap {
	errs := ErrorMap{}

	if strings.TrimSpace(f.FirstName) == "" {
		errs.add(FirstName, KindRequired, "First name is required")
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs.add(LastName, KindRequired, "Last name is required")
	}
	if strings.TrimSpace(f.Username) == "" {
		errs.add(Username, KindRequired, "Terminal username is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs.add(Email, KindRequired, "Email is required")
	} else if !ValidEmail(f.Email) {
		errs.add(Email, KindInvalidFormat, "Please enter a valid email")
	}
	if f.Password == "" {
		errs.add(Password, KindRequired, "Password is required")
	} else if utf8.RuneCountInString(f.Password) < MinPasswordLength {
		errs.add(Password, KindTooShort, "Password must be at least 8 characters")
	}
	if f.ConfirmPassword == "" {
		errs.add(ConfirmPassword, KindRequired, "Please confirm your password")
	} else if f.Password != f.ConfirmPassword {
		errs.add(ConfirmPassword, KindMismatch, "Passwords do not match")
	}
	return errs
}

// Valid reports whether Validate produces no errors.
func (f SignUpForm) Valid() bool {
	return len(f.Validate()) == 0
}

// Submit validates and records the resulting error map wholesale. It
// returns true when the form may be sent and marks it as submitting.
func (f *SignUpForm) Submit() bool {
	if f.Submitting {
		return false
	}
	f.Errors = f.Validate()
	if len(f.Errors) > 0 {
		return false
	}
	f.Submitting = true
	return true
}

// Reject attaches a service-side error to field after a failed submit.
func (f *SignUpForm) Reject(field Field, msg string) {
	if f.Errors == nil {
		f.Errors = ErrorMap{}
	}
	f.Errors.add(field, KindRejected, msg)
}

// ValidEmail reports whether s looks like local-part@domain.tld with no
// whitespace anywhere. RE2's \s is ASCII-only, so Unicode spaces and the
// byte order mark are rejected separately.
func ValidEmail(s string) bool {
	if strings.IndexFunc(s, isEmailSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(s)
}

func isEmailSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
