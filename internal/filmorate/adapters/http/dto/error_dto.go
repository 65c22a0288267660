package dto

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}
