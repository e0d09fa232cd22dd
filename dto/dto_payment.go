package dto

// Amount is in whole currency units; the processor call converts to cents.
type PaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
