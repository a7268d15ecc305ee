package response

import (
	"time"

	"pawnshop/internal/domain/entities"
)

type ContactResponse struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

type ApplicationResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	PhotoBase64  []string         `json:"photo_base64,omitempty"`
	Category     string           `json:"category"`
	Comment      string           `json:"comment"`
	SubmittedAt  time.Time        `json:"submitted_at"`
	Status       string           `json:"status"`
	Price        *float64         `json:"price,omitempty"`
	AdminComment *string          `json:"admin_comment,omitempty"`
	Contact      *ContactResponse `json:"contact,omitempty"`
}

func FromApplication(app entities.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:           app.ID,
		UserID:       app.UserID,
		PhotoBase64:  app.PhotoBase64,
		Category:     app.Category,
		Comment:      app.Comment,
		SubmittedAt:  app.SubmittedAt,
		Status:       string(app.Status),
		Price:        app.Price,
		AdminComment: app.AdminComment,
	}
	if app.Contact != nil {
		resp.Contact = &ContactResponse{
			FullName:      app.Contact.FullName,
			Phone:         app.Contact.Phone,
			Address:       app.Contact.Address,
			PaymentMethod: app.Contact.PaymentMethod,
		}
	}
	return resp
}

func FromApplications(apps []entities.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, FromApplication(app))
	}
	return out
}
