// Package pubsub implements the EventPublisher domain service. Order events
// go to Google Cloud Pub/Sub in production and to a plain HTTP endpoint in
// development; with no configuration events are dropped.
package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dropPublisher swallows events when no provider is configured.
type dropPublisher struct {
	logger *slog.Logger
}

func (p *dropPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("Order event dropped, publishing disabled", slog.String("orderID", event.OrderID))

	return nil
}

func (p *dropPublisher) Close() error { return nil }

// PublisherParams holds dependencies for the event publisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher implementation from configuration
// and ties its shutdown to the fx lifecycle.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Pub/Sub not configured, order events will be dropped")

		return &dropPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub local provider requires an endpoint")
		}
		logger.Info("Publishing order events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub google provider requires a project and topic")
		}
		logger.Info("Publishing order events to Google Pub/Sub",
			slog.String("projectID", cfg.ProjectID), slog.String("topicID", cfg.TopicID))

		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
