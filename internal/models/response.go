package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func NewMessage(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
