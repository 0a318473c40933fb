package types

// ApiResponse is the envelope every handler returns.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthFailure is the fixed body for credential failures. The field names are
// part of the frontend compatibility contract.
type AuthFailure struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
