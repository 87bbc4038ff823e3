package ticket

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentIntent is what the client needs to confirm the payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, ticketID string, amount int, currency string) (*PaymentIntent, error)
}

// StripeGateway creates Stripe PaymentIntents. stripe.Key must be set.
type StripeGateway struct{}

func (StripeGateway) CreateIntent(ctx context.Context, ticketID string, amount int, currency string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		// Stripe takes the smallest currency unit.
		Amount:   stripe.Int64(int64(amount) * 100),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("ticketId", ticketID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
