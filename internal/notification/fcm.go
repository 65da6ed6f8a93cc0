package notification

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/palabraviva/daily-verse-api/pkg/config"
)

// FCMProvider sends multicast pushes through Firebase Cloud Messaging.
type FCMProvider struct {
	client *messaging.Client
}

// NewFCMProvider initializes the Firebase app from the inline JSON
// credential when present, falling back to the credential file.
func NewFCMProvider(ctx context.Context, cfg *config.Config) (*FCMProvider, error) {
	var opts []option.ClientOption
	switch {
	case cfg.FirebaseCredJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseCredJSON)))
	case cfg.FirebaseCredFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredFile))
	default:
		return nil, errors.New("no firebase credentials configured")
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	return &FCMProvider{client: client}, nil
}

func (p *FCMProvider) SendBatch(ctx context.Context, tokens []string, n Notification) (*BatchResult, error) {
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
	}

	br, err := p.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, err
	}

	out := &BatchResult{
		SuccessCount: br.SuccessCount,
		FailureCount: br.FailureCount,
		Results:      make([]SendResult, 0, len(br.Responses)),
	}
	for _, resp := range br.Responses {
		result := SendResult{Success: resp.Success, Err: resp.Error}
		if resp.Error != nil {
			result.Permanent = messaging.IsUnregistered(resp.Error) ||
				errorutils.IsInvalidArgument(resp.Error)
		}
		out.Results = append(out.Results, result)
	}
	return out, nil
}

// UnavailableProvider stands in when FCM credentials are absent so the rest
// of the API keeps serving; every send fails as a batch error.
type UnavailableProvider struct{}

func (UnavailableProvider) SendBatch(context.Context, []string, Notification) (*BatchResult, error) {
	return nil, errors.New("push delivery not configured")
}
