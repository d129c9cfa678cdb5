package serverutils

// APIError is the uniform error payload returned by the HTTP layer.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}
