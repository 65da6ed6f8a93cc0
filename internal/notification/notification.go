// Package notification holds the timezone-aware delivery scheduler and the
// push dispatcher that drives the FCM provider.
package notification

import "context"

// BatchSize is the maximum number of tokens FCM accepts in one multicast
// call.
const BatchSize = 500

// Notification is the rendered push payload for one delivery group.
type Notification struct {
	Title string
	Body  string
}

// SendResult is the outcome for a single token within a batch. Permanent
// means the token is stale (unregistered or malformed) and its registration
// must be removed.
type SendResult struct {
	Success   bool
	Permanent bool
	Err       error
}

// BatchResult aggregates one provider call.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	Results      []SendResult
}

// Provider is the push-delivery boundary. Results are positional: Results[i]
// corresponds to tokens[i].
type Provider interface {
	SendBatch(ctx context.Context, tokens []string, n Notification) (*BatchResult, error)
}
