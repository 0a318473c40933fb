package types

import "fmt"

// TokenRequest is the body of POST /jwt.
type TokenRequest struct {
	Email string `json:"email"`
}

func (t TokenRequest) Validate() error {
	if t.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// UserUpsertRequest is the body of PUT /users/:email.
type UserUpsertRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}
