package dto

// ChatRequest - сообщение пользователя AI-ассистенту
type ChatRequest struct {
	Query  string `json:"query" validate:"required"`
	UserID string `json:"user_id,omitempty"`
}

// ChatResponse - ответ ассистента (эндпоинт никогда не отдаёт ошибку).
// action зарезервирован фронтендом и всегда null.
type ChatResponse struct {
	Response string      `json:"response"`
	Action   interface{} `json:"action"`
}
