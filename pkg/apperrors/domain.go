package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для общих ошибок
бизнес-логики карьерного центра.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAIParse - фабрика для нечитаемого ответа языковой модели (500).
// Типизированный ParseError: ничего не сохраняем, наружу generic message.
func ErrAIParse(err error) *AppError {
	return Wrap(err, CodeAIParseFailed, "ai", "Failed to parse AI response", http.StatusInternalServerError)
}

// --- Сервисы не сконфигурированы (503) ---

var ErrDatabaseNotConfigured = New(
	CodeNotConfigured,
	"system",
	"Database not configured",
	http.StatusServiceUnavailable,
)

var ErrAINotConfigured = New(
	CodeNotConfigured,
	"ai",
	"AI service not configured",
	http.StatusServiceUnavailable,
)

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - 400, как в исходном контракте регистрации
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Account with this email already exists",
	http.StatusBadRequest,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token expired",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

var ErrNotAuthenticated = New(
	CodeUnauthorized,
	"auth",
	"Not authenticated",
	http.StatusUnauthorized,
)

// --- Владение и роли ---

var ErrNotResourceOwner = New(
	CodeForbidden,
	"auth",
	"Not authorized",
	http.StatusForbidden,
)

var ErrCompanyOnly = New(
	CodeForbidden,
	"auth",
	"Access denied: for company accounts only",
	http.StatusForbidden,
)

var ErrStudentOnly = New(
	CodeForbidden,
	"auth",
	"Access denied: for students only",
	http.StatusForbidden,
)

var ErrModeratorOnly = New(
	CodeForbidden,
	"auth",
	"Requires moderator privileges",
	http.StatusForbidden,
)

var ErrVacancyNotOwned = New(
	CodeForbidden,
	"vacancy",
	"Access denied: you do not own this vacancy",
	http.StatusForbidden,
)

// --- Домен ---

var ErrVacancyNotFound = New(
	CodeNotFound,
	"vacancy",
	"Vacancy not found",
	http.StatusNotFound,
)

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

var ErrResumeNotFound = New(
	CodeNotFound,
	"resume",
	"Resume not found",
	http.StatusNotFound,
)

var ErrTouchNotFound = New(
	CodeNotFound,
	"response",
	"Vacancy touch not found",
	http.StatusNotFound,
)

// ErrTouchLinkageMissing - у отклика нет связанной вакансии или резюме,
// анализировать нечего
var ErrTouchLinkageMissing = New(
	CodeInvalidOperation,
	"response",
	"Missing vacancy or resume data for analysis.",
	http.StatusBadRequest,
)

var ErrNoFieldsToUpdate = New(
	CodeValidationFailed,
	"request",
	"No fields to update provided",
	http.StatusBadRequest,
)
