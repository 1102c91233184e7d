// Package auth is a local stand-in for a real identity provider. It checks
// that the required fields are present and accepts a single fixed code.
package auth

import (
	"errors"
	"fmt"
	"strings"
)

// DemoCode is the only verification code Mock accepts.
const DemoCode = "1234"

var (
	// ErrMissingField indicates a required credential field was blank.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidCode indicates a verification code other than DemoCode.
	ErrInvalidCode = errors.New("invalid verification code")
)

// Challenge is issued by RequestCode and redeemed by VerifyCode.
type Challenge struct {
	Name    string
	Contact string
	// Hint is shown to the user in place of a delivered message.
	Hint string
}

// Identity is a verified user.
type Identity struct {
	Name    string
	Contact string
}

// Mock implements the signup and login flows without any network.
type Mock struct{}

// RequestCode starts a signup for name and contact.
func (Mock) RequestCode(name, contact string) (Challenge, error) {
	name, contact = strings.TrimSpace(name), strings.TrimSpace(contact)
	if err := required("name", name); err != nil {
		return Challenge{}, err
	}
	if err := required("contact", contact); err != nil {
		return Challenge{}, err
	}
	return Challenge{
		Name:    name,
		Contact: contact,
		Hint:    fmt.Sprintf("Use code %s for demo", DemoCode),
	}, nil
}

// VerifyCode completes a signup.
func (Mock) VerifyCode(ch Challenge, code string) (Identity, error) {
	if strings.TrimSpace(code) != DemoCode {
		return Identity{}, ErrInvalidCode
	}
	return Identity{Name: ch.Name, Contact: ch.Contact}, nil
}

// Login accepts any non-blank password for a non-blank contact.
func (Mock) Login(contact, password string) (Identity, error) {
	contact = strings.TrimSpace(contact)
	if err := required("contact", contact); err != nil {
		return Identity{}, err
	}
	if err := required("password", password); err != nil {
		return Identity{}, err
	}
	return Identity{Contact: contact}, nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return nil
}
