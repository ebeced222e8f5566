package dashboard

import "context"

// SubscriptionSummary is the gated dashboard content: a rollup of the
// account's subscriptions.
type SubscriptionSummary struct {
	TotalActive   int     `json:"total_active"`
	TotalTrialing int     `json:"total_trialing"`
	TotalCanceled int     `json:"total_canceled"`
	MonthlyCents  int64   `json:"monthly_cents"`
	Currency      string  `json:"currency"`
	ChurnRate     float64 `json:"churn_rate"`
}

// SummaryProvider supplies the subscription rollup. The real deployment
// backs this with the billing service; tests and development use the static
// provider below.
type SummaryProvider interface {
	Summary(ctx context.Context) (SubscriptionSummary, error)
}

// SummaryProviderFunc adapts a function to the SummaryProvider interface.
type SummaryProviderFunc func(ctx context.Context) (SubscriptionSummary, error)

func (f SummaryProviderFunc) Summary(ctx context.Context) (SubscriptionSummary, error) {
	return f(ctx)
}

// staticSummaryProvider returns fixed development numbers.
type staticSummaryProvider struct{}

func (staticSummaryProvider) Summary(ctx context.Context) (SubscriptionSummary, error) {
	return SubscriptionSummary{
		TotalActive:   128,
		TotalTrialing: 17,
		TotalCanceled: 9,
		MonthlyCents:  482_300,
		Currency:      "USD",
		ChurnRate:     0.042,
	}, nil
}
