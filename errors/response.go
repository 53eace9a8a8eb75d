package errors

// ErrorResponse is the JSON document the CLI prints for a failed command.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// ToResponse wraps e for printing.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e}
}
