package types

import "fmt"

// CustomError carries an HTTP status alongside the message so the global
// error handler can map service failures to the right response code.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NotFound builds a 404 error for a missing entity.
func NotFound(what string) *CustomError {
	return &CustomError{Code: 404, Message: fmt.Sprintf("%s not found", what)}
}

// BadRequest builds a 400 error for an invalid payload.
func BadRequest(message string) *CustomError {
	return &CustomError{Code: 400, Message: message}
}
