package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/AlexZinkM/donate-action/internal/metrics"

	"github.com/nats-io/nats.go"
)

// DonationEvent is published for every transaction handed to a wallet.
// It records intent only: the wallet may never sign or submit it.
type DonationEvent struct {
	Sender               string    `json:"sender"`
	Recipient            string    `json:"recipient"`
	Lamports             uint64    `json:"lamports"`
	AmountSOL            string    `json:"amount_sol"`
	Blockhash            string    `json:"blockhash"`
	LastValidBlockHeight uint64    `json:"last_valid_block_height"`
	Cluster              string    `json:"cluster"`
	BuiltAt              time.Time `json:"built_at"`
}

// Publisher defines the interface for publishing donation events.
type Publisher interface {
	PublishDonation(ctx context.Context, event *DonationEvent) error
	Close() error
}

// NopPublisher drops every event. Used when NATS is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishDonation(context.Context, *DonationEvent) error { return nil }
func (NopPublisher) Close() error { return nil }

// NATSPublisher publishes donation events as JSON to a core NATS subject.
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewNATSPublisher connects to natsURL.
func NewNATSPublisher(natsURL, subject string, m *metrics.Metrics, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name("donate-action"),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(1*time.Second),
		nats.MaxReconnects(-1), // Unlimited reconnects
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("reconnected to NATS", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("connected to NATS", "url", natsURL, "subject", subject)

	return &NATSPublisher{
		nc:      nc,
		subject: subject,
		metrics: m,
		logger:  logger,
	}, nil
}

// PublishDonation publishes one event. Core NATS publish is fire-and-forget;
// the error covers encoding and connection state only.
func (p *NATSPublisher) PublishDonation(ctx context.Context, event *DonationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal donation event: %w", err)
	}

	start := time.Now()
	err = p.nc.Publish(p.subject, data)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
	}
	p.metrics.RecordNATSPublish(p.subject, status, duration)

	if err != nil {
		return fmt.Errorf("failed to publish donation event: %w", err)
	}

	p.logger.DebugContext(ctx, "published donation event",
		"subject", p.subject,
		"sender", event.Sender,
		"lamports", event.Lamports,
	)
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}
