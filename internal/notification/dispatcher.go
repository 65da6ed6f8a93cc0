package notification

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/palabraviva/daily-verse-api/internal/registration"
)

// DispatchResult aggregates one group's send outcome across all batches.
type DispatchResult struct {
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
}

// Dispatcher partitions a token set into provider-sized batches, sends them
// and removes registrations the provider reports as permanently invalid.
type Dispatcher struct {
	provider Provider
	regs     registration.Repository
	log      zerolog.Logger
}

func NewDispatcher(provider Provider, regs registration.Repository, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		provider: provider,
		regs:     regs,
		log:      log.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch is fire-and-forget per batch: a failed batch counts all of its
// tokens as failures and does not stop the batches after it. Tokens with
// transient errors stay registered; a later pass retries them naturally.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, n Notification) DispatchResult {
	var result DispatchResult

	for start := 0; start < len(tokens); start += BatchSize {
		end := start + BatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		br, err := d.provider.SendBatch(ctx, batch, n)
		if err != nil {
			d.log.Error().Err(err).Int("batch_size", len(batch)).Msg("batch send failed")
			result.FailureCount += len(batch)
			continue
		}

		result.SuccessCount += br.SuccessCount
		result.FailureCount += br.FailureCount

		for i, r := range br.Results {
			if r.Success || !r.Permanent {
				continue
			}
			if err := d.regs.Delete(ctx, batch[i]); err != nil && !errors.Is(err, registration.ErrNotFound) {
				d.log.Error().Err(err).Msg("failed to delete stale token")
				continue
			}
			d.log.Info().Msg("removed permanently invalid token")
		}
	}

	return result
}
