package payments

import (
	"fmt"

	"github.com/onboardflow/onboardflow/internal/config"
	"github.com/onboardflow/onboardflow/internal/models"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Init points the Stripe SDK at the configured secret key. Call after
// config.Load.
func Init() {
	stripe.Key = config.Get().StripeSecretKey
}

// CheckoutParams builds the hosted checkout session request for a project's
// deposit: one line item named after the project, the project ID carried in
// session metadata so the webhook can route the completion event back.
func CheckoutParams(project models.Project) *stripe.CheckoutSessionParams {
	appURL := config.Get().AppURL

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(project.Name),
					},
					UnitAmount: stripe.Int64(project.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(appURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(appURL + "/client/" + project.MagicLink),
	}

	params.AddMetadata("project_id", fmt.Sprint(project.ID))

	return params
}

// CreateSession calls the gateway. A func var so handler tests can stub the
// network call.
var CreateSession = func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// VerifyEvent checks the webhook signature header against the shared secret
// and parses the event. Verification is delegated entirely to the SDK.
func VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signatureHeader, config.Get().StripeWebhookSecret)
}
