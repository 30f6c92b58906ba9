// Package payments wraps the Stripe payment-intent API behind a one-method
// interface so handlers can be tested without the SDK.
package payments

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// IntentCreator asks the payment processor for an intent and returns the
// client secret the browser needs to complete the charge.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}

// MinorUnits converts a price in major currency units to minor units,
// rounding to the nearest cent first (19.99 -> 1999).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type StripeClient struct{}

// NewStripeClient sets the package-level API key once at startup.
func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (s *StripeClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
