package dto

// ErrorResponse standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
