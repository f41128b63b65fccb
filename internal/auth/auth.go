// Package auth defines the ports the login and sign-up screens submit
// through, and a simulated implementation that stands in for a real
// account service.
package auth

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrUsernameTaken      = errors.New("auth: username already taken")
	ErrUnavailable        = errors.New("auth: service unavailable")
)

// Credentials are what the login screen submits.
type Credentials struct {
	Username string
	Password string
}

// Profile is what the sign-up screen submits once validation passes.
type Profile struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// Authenticator verifies credentials. A nil error means the user is signed in.
type Authenticator interface {
	Authenticate(ctx context.Context, c Credentials) error
}

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, p Profile) error
}

// Service is the combined port the shell is wired with.
type Service interface {
	Authenticator
	Registrar
}

// Mask keeps the first character of s and replaces the rest with '*'.
// It is used wherever a username has to appear in logs.
func Mask(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	rest := utf8.RuneCountInString(s[size:])
	return string(r) + strings.Repeat("*", rest)
}

// Describe turns a port error into the line shown on a screen.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid terminal username or password"
	case errors.Is(err, ErrUsernameTaken):
		return "Terminal username is already taken"
	case errors.Is(err, ErrUnavailable):
		return "Authentication service is unavailable, try again later"
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	}
	return err.Error()
}
