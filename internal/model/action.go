package model

// ActionType is the top-level type of a GET action response
type ActionType string

const (
	ActionTypeAction ActionType = "action"
)

// LinkedActionType is how a wallet executes a linked action
type LinkedActionType string

const (
	LinkedActionTypeTransaction LinkedActionType = "transaction"
)

// ActionGetResponse represents response for GET /api/donate
type ActionGetResponse struct {
	Type        ActionType   `json:"type"`
	Icon        string       `json:"icon"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Label       string       `json:"label"`
	Links       *ActionLinks `json:"links,omitempty"`
}

// ActionLinks holds the buttons a wallet renders for the action
type ActionLinks struct {
	Actions []LinkedAction `json:"actions"`
}

// LinkedAction is one preset button; Href may contain {param} placeholders
type LinkedAction struct {
	Type       LinkedActionType  `json:"type"`
	Label      string            `json:"label"`
	Href       string            `json:"href"`
	Parameters []ActionParameter `json:"parameters,omitempty"`
}

// ActionParameter describes a user input that fills an Href placeholder
type ActionParameter struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// ActionPostRequest represents request for POST /api/donate
type ActionPostRequest struct {
	Account string `json:"account"`
}

// ActionPostResponse represents response for POST /api/donate
type ActionPostResponse struct {
	Type        LinkedActionType `json:"type"`
	Transaction string           `json:"transaction"` // base64 wire transaction, unsigned
	Message     string           `json:"message,omitempty"`
}

// ActionsJSON represents the /actions.json discovery document
type ActionsJSON struct {
	Rules []ActionRule `json:"rules"`
}

// ActionRule maps a website path onto an action API path
type ActionRule struct {
	PathPattern string `json:"pathPattern"`
	APIPath     string `json:"apiPath"`
}
