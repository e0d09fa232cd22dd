package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"ziffy_backend/dto"
)

// CreatePaymentIntent asks the processor for an intent over the badge
// price and hands the client secret back for the card flow. Amount
// arrives in whole currency units; Stripe wants cents.
func CreatePaymentIntent(body dto.PaymentIntentRequest) (int, any) {
	if body.Amount <= 0 {
		return fiber.StatusBadRequest, dto.ErrorResponse{Message: "amount is required"}
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(body.Amount * 100),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"}
	}
	return fiber.StatusOK, dto.PaymentIntentResponse{ClientSecret: pi.ClientSecret}
}
