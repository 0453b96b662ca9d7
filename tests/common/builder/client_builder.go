//go:build unit || e2e

package builder

import (
	domclient "hotel-backoffice/internal/domain/client"
	reqdto "hotel-backoffice/internal/handler/dto/request"
)

type ClientBuilder struct {
	FullName   string
	Email      string
	Phone      string
	Country    string
	City       string
	Zip        string
	Address    string
	ExternalID *string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		FullName: "Maria Gonzalez",
		Email:    "maria.gonzalez@example.com",
		Phone:    "+58 212 555 0101",
		Country:  "VE",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) BuildDomain() *domclient.Client {
	return &domclient.Client{
		FullName:   b.FullName,
		Email:      b.Email,
		Phone:      b.Phone,
		Country:    b.Country,
		City:       b.City,
		Zip:        b.Zip,
		Address:    b.Address,
		ExternalID: b.ExternalID,
	}
}

func (b *ClientBuilder) BuildRequestDTO() reqdto.ClientRequest {
	return reqdto.ClientRequest{
		FullName: b.FullName,
		Email:    b.Email,
		Phone:    b.Phone,
		Country:  b.Country,
		City:     b.City,
		Zip:      b.Zip,
		Address:  b.Address,
	}
}
