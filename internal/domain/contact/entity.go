package contact

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("contact name cannot be empty")
	ErrEmptyMessage  = errors.New("contact message cannot be empty")
	ErrInvalidStatus = errors.New("invalid contact status")
)

type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	default:
		return false
	}
}

type Contact struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Status  Status
}

func (c *Contact) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Message) == "" {
		return ErrEmptyMessage
	}
	if c.Status == "" {
		c.Status = StatusNew
	}
	if !c.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
