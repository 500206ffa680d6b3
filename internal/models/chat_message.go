package models

type ChatMessage struct {
	BaseModel
	SenderID   string  `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID *string `gorm:"type:uuid;index" json:"receiver_id,omitempty"`
	Message    string  `gorm:"not null" json:"message"`
	ChatType   string  `gorm:"not null" json:"chat_type"`
}
