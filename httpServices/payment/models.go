package payment

// Intent is the authorization handle returned by the processor. ClientSecret
// is what the client side needs to complete the charge; ID is what the
// booking ledger stores as the payment reference.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiErrorResponse struct {
	Error apiError `json:"error"`
}
