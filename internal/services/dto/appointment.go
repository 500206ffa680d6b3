package dto

import "time"

// CreateAppointmentRequest - запись студента на консультацию/встречу
type CreateAppointmentRequest struct {
	StudentID       string    `json:"student_id" validate:"required,uuid"`
	CompanyID       *string   `json:"company_id,omitempty" validate:"omitempty,uuid"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	AppointmentType string    `json:"appointment_type" validate:"required"`
	Notes           string    `json:"notes,omitempty"`
}

// CreateChatMessageRequest - сообщение в чате между пользователями
type CreateChatMessageRequest struct {
	SenderID   string  `json:"sender_id" validate:"required,uuid"`
	ReceiverID *string `json:"receiver_id,omitempty" validate:"omitempty,uuid"`
	Message    string  `json:"message" validate:"required"`
	ChatType   string  `json:"chat_type,omitempty"`
}

// ListChatMessagesRequest - параметры выборки переписки
type ListChatMessagesRequest struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=500"`
}
