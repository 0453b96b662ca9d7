package request

import "hotel-backoffice/internal/domain/client"

type ClientRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	Address  string `json:"address"`
}

func (r ClientRequest) ToDomain() *client.Client {
	return &client.Client{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Country:  r.Country,
		City:     r.City,
		Zip:      r.Zip,
		Address:  r.Address,
	}
}
