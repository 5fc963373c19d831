// Package kafka publishes band advisories to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/iono-band-advisor/internal/config"
	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

// Publisher produces advisory messages to a Kafka topic.
// It implements watch.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured advisory topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes adv and writes it to the advisory topic. Messages are
// keyed by station code so consumers see per-station advisories in order.
func (p *Publisher) Publish(ctx context.Context, adv domain.Advisory) error {
	msg, err := serializeToMessage(adv)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write advisory for %s: %w", adv.Station, err)
	}
	p.logger.Debug("published advisory",
		"station", adv.Station,
		"bands", len(adv.Bands),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals an Advisory into a Kafka message.
func serializeToMessage(adv domain.Advisory) (kafkago.Message, error) {
	data, err := json.Marshal(adv)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize advisory: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(adv.Station),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station", Value: []byte(adv.Station)},
			{Key: "generated_at", Value: []byte(adv.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
