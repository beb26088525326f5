package model

// ActionError is the JSON structure the Actions protocol expects for failed requests:
// {"error":{"message":"..."}}
type ActionError struct {
	Error ActionErrorBody `json:"error"`
}

// ActionErrorBody carries the human-readable failure reason shown by wallets.
type ActionErrorBody struct {
	Message string `json:"message"`
}

// NewActionError builds an ActionError with the given message.
func NewActionError(message string) ActionError {
	return ActionError{Error: ActionErrorBody{Message: message}}
}
