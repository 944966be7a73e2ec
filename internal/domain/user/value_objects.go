package user

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrBlankUsername   = errors.New("username cannot be blank")
	ErrUsernameTooLong = errors.New("username cannot exceed 50 characters")
	ErrInvalidRole     = errors.New("invalid role")
	ErrBlankPassword   = errors.New("password cannot be blank")
)

const MaxUsernameLength = 50

type Username struct {
	value string
}

// NewUsername normalizes to lower case; login is case-insensitive.
func NewUsername(s string) (Username, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Username{}, ErrBlankUsername
	}
	if utf8.RuneCountInString(s) > MaxUsernameLength {
		return Username{}, ErrUsernameTooLong
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrBlankPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	username Username
	password Password
}

func NewCredentials(username Username, password Password) Credentials {
	return Credentials{username: username, password: password}
}

func (c Credentials) Username() Username { return c.username }
func (c Credentials) Password() Password { return c.password }
