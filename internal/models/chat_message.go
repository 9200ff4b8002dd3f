package models

import "time"

const (
	ChatSenderCustomer = "customer"
	ChatSenderAdvisor  = "advisor"
)

// Mensaje del chat cliente ↔ asesor. Cada cliente del portal tiene su
// propia conversación.
type ChatMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint   `gorm:"not null;index" json:"customer_id"`
	Sender     string `gorm:"size:20;not null" json:"sender"`
	SenderName string `gorm:"size:100" json:"sender_name"`
	Body       string `gorm:"size:1000;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}
