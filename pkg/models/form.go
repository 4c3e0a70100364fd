package models

import "time"

// LeadForm is the contact record captured by the landing page form.
// It doubles as the JSON body posted to the intake endpoint.
type LeadForm struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// Lead is a stored lead record
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:120;not null" json:"email"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	CreatedAt time.Time `json:"-"`
}

// TableName keeps the table name used by the original intake service
func (Lead) TableName() string {
	return "lead"
}

// LeadResponse is the public shape of a lead returned by GET /leads
type LeadResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToResponse drops internal fields
func (l Lead) ToResponse() LeadResponse {
	return LeadResponse{
		ID:    l.ID,
		Name:  l.Name,
		Email: l.Email,
		Phone: l.Phone,
	}
}
