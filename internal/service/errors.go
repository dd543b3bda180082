package service

import (
	"fmt"
	"net/http"
)

// Сообщения пользователю, не зависящие от ответа шлюза
const (
	msgMissingCredentials = "Please enter both email/username and password"
	msgInvalidCredentials = "Invalid username or password"
	msgRequestTimeout     = "Request timed out. Please try again."
	msgNetworkError       = "Unable to connect to server. Please check your internet connection."
	msgIntakeFailed       = "Business intake submission failed. Please try again."
	msgRegistrationFailed = "Registration failed. Please try again."
)

// StatusError представляет неуспешный HTTP-статус шлюза
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// NewStatusError создает ошибку по HTTP-статусу шлюза
func NewStatusError(statusCode int) *StatusError {
	return &StatusError{StatusCode: statusCode}
}

// UserMessage возвращает сообщение для пользователя по коду статуса
func (e *StatusError) UserMessage() string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return "Invalid request. Please check your credentials."
	case http.StatusUnauthorized:
		return "Invalid username or password"
	case http.StatusForbidden:
		return "Access denied. Please contact support."
	case http.StatusNotFound:
		return "Login service not found"
	case http.StatusInternalServerError:
		return "Server error. Please try again later."
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable. Please try again later."
	default:
		return fmt.Sprintf("Login failed (%d). Please try again.", e.StatusCode)
	}
}
