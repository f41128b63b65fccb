package forms

import "strings"

// LoginField names an input on the login form.
type LoginField string

const (
	LoginUsername LoginField = "username"
	LoginPassword LoginField = "password"
)

// LoginFields returns the login inputs in focus order.
func LoginFields() []LoginField {
	return []LoginField{LoginUsername, LoginPassword}
}

// Label is the user-facing label of the field.
func (f LoginField) Label() string {
	switch f {
	case LoginUsername:
		return "Terminal username"
	case LoginPassword:
		return "Password"
	}
	return string(f)
}

type LoginForm struct {
	Username   string
	Password   string
	Submitting bool
}

func (f *LoginForm) Set(field LoginField, value string) {
	switch field {
	case LoginUsername:
		f.Username = value
	case LoginPassword:
		f.Password = value
	}
}

func (f LoginForm) Value(field LoginField) string {
	switch field {
	case LoginUsername:
		return f.Username
	case LoginPassword:
		return f.Password
	}
	return ""
}

// Missing returns the first required field that is empty, or "" when the
// form can be submitted.
func (f LoginForm) Missing() LoginField {
	if strings.TrimSpace(f.Username) == "" {
		return LoginUsername
	}
	if f.Password == "" {
		return LoginPassword
	}
	return ""
}
