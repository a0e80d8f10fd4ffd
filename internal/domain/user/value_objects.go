package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidMembershipType = errors.New("invalid membership type")
	ErrInvalidSkillLevel     = errors.New("invalid skill level")
	ErrPasswordTooWeak       = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong       = errors.New("password must be at most 72 bytes long")
	ErrInvalidPhone          = errors.New("phone must be at least 10 characters long")
	ErrEmptyName             = errors.New("first and last name are required")
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
	MinPhoneLength    = 10
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address so the uniqueness claim is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > MaxPasswordLength {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinPhoneLength {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return Name{}, ErrEmptyName
	}
	return Name{first: first, last: last}, nil
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }

func (n Name) Full() string {
	return n.first + " " + n.last
}

// Credentials are checked as typed: the password length rule applies at registration only.
type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: password}, nil
}

func (c Credentials) Email() Email     { return c.email }
func (c Credentials) Password() string { return c.password }
