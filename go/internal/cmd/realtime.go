package main

import (
	"context"
	"fmt"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/config"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/store"
	"github.com/rs/zerolog/log"
)

// Feed is the change-event plumbing between the write path, the store and
// WebSocket clients.
type Feed struct {
	// Notifier is handed to every App.
	Notifier  realtime.Notifier
	Hub       *realtime.Hub
	Publisher *realtime.JetStreamPublisher
	Listener  *realtime.Listener
	Consumer  *realtime.Consumer
}

// setupFeed wires the notifier for the backend:
//
//   - Postgres: writes go to the outbox; the listener relays rows to
//     JetStream, or straight to the hub without NATS.
//   - Local/Redis with NATS: writes publish to JetStream.
//   - Local/Redis without NATS: writes go straight to the hub.
//
// With NATS a durable consumer feeds the hub and refresher. The refresher
// is always notified in-process too, so reads in this instance see writes
// immediately.
func setupFeed(ctx context.Context, cfg *config.Config, backend *Backend, refresher *store.Refresher) (*Feed, error) {
	hubCfg := realtime.DefaultHubConfig()
	hubCfg.CheckOrigin = realtime.AllowOrigins(cfg.Server.AllowedOrigins)
	feed := &Feed{Hub: realtime.NewHub(hubCfg)}
	deliver := realtime.Fanout{refresher, feed.Hub}

	if cfg.NATS.Enabled() {
		jsCfg := jetStreamConfig(cfg.NATS)
		pub, err := realtime.NewJetStreamPublisher(ctx, jsCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create JetStream publisher: %w", err)
		}
		feed.Publisher = pub

		consumer, err := realtime.NewConsumer(ctx, jsCfg, deliver.Notify)
		if err != nil {
			pub.Close()
			return nil, fmt.Errorf("failed to create JetStream consumer: %w", err)
		}
		feed.Consumer = consumer
	}

	var writes realtime.Notifier
	switch {
	case backend.DB != nil:
		var relayTo realtime.Publisher = realtime.PublisherFunc(deliver.Notify)
		if feed.Publisher != nil {
			relayTo = feed.Publisher
		}

		listenerCfg := realtime.DefaultListenerConfig()
		listenerCfg.DatabaseURL = cfg.Database.DSN()
		listener, err := realtime.NewListener(backend.DB, relayTo, listenerCfg)
		if err != nil {
			feed.Close()
			return nil, fmt.Errorf("failed to create outbox listener: %w", err)
		}
		feed.Listener = listener
		writes = realtime.NewOutboxNotifier(leaguedb.New(backend.DB), listenerCfg.NotifyChannel)
	case feed.Publisher != nil:
		writes = feed.Publisher
	default:
		writes = feed.Hub
	}

	feed.Notifier = realtime.Fanout{refresher, writes}
	log.Info().
		Bool("nats", feed.Publisher != nil).
		Bool("outbox", feed.Listener != nil).
		Msg("change feed ready")
	return feed, nil
}

// Start runs the hub, listener and consumer until ctx is done.
func (f *Feed) Start(ctx context.Context) {
	go f.Hub.Start(ctx)

	if f.Listener != nil {
		go func() {
			if err := f.Listener.Start(ctx); err != nil {
				log.Error().Err(err).Msg("outbox listener stopped")
			}
		}()
	}
	if f.Consumer != nil {
		go func() {
			if err := f.Consumer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("JetStream consumer stopped")
			}
		}()
	}
}

func (f *Feed) Close() {
	if f.Consumer != nil {
		_ = f.Consumer.Stop()
	}
	if f.Publisher != nil {
		_ = f.Publisher.Close()
	}
}
