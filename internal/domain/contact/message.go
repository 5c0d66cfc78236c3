package contact

import "time"

// Message is one chat-widget contact form submission.
type Message struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	Email string `json:"email,omitempty"`
	Body  string `gorm:"not null" json:"body"`
	Lang  string `gorm:"type:varchar(8);not null;default:'en'" json:"lang"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
