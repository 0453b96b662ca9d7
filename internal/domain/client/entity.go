package client

import (
	"errors"
	"strings"
)

var (
	ErrEmptyFullName = errors.New("client full name cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// Client is a guest record. Email is the natural key and is stored
// case-normalized; ExternalID is the PMS guest identifier, unique when
// present.
type Client struct {
	FullName   string
	Email      string
	Phone      string
	Country    string
	City       string
	Zip        string
	Address    string
	ExternalID *string
}

func (c *Client) Validate() error {
	c.FullName = CollapseWhitespace(c.FullName)
	if c.FullName == "" {
		return ErrEmptyFullName
	}

	email, err := NormalizeEmail(c.Email)
	if err != nil {
		return err
	}
	c.Email = email
	return nil
}

// NormalizeEmail lower-cases and trims an address so the uniqueness
// constraint is case-insensitive in practice.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
