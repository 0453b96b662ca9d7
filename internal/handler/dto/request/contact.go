package request

import "hotel-backoffice/internal/domain/contact"

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToDomain() *contact.Contact {
	return &contact.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived"`
}
