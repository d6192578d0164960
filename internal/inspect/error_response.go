package inspect

import "fmt"

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{err.Error()}
}

func errNoSuchField(name string) error {
	return fmt.Errorf("no %s field in request", name)
}
