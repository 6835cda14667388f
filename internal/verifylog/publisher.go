package verifylog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher mirrors verification resolutions onto a Kafka topic for
// downstream analytics. Delivery is best effort; a broker outage must never
// affect verification traffic, so failures are logged and dropped.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewPublisher connects to the brokers. An empty broker list disables
// publishing and returns nil without error.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.LeaderAck()),
		kgo.DisableIdempotentWrite(),
		kgo.ProducerLinger(5*time.Millisecond),
		kgo.RecordDeliveryTimeout(10*time.Second),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

type logRecord struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	AccountName   string    `json:"accountName,omitempty"`
	Bank          string    `json:"bank,omitempty"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	UserID        string    `json:"userId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Publish sends one entry asynchronously, keyed by account number so all
// resolutions for an account land on the same partition.
func (p *Publisher) Publish(e Entry) {
	value, err := json.Marshal(logRecord{
		ID:            e.ID.String(),
		AccountNumber: e.AccountNumber,
		AccountName:   e.AccountName,
		Bank:          e.Bank,
		Status:        e.Status,
		Source:        e.Source,
		UserID:        e.UserID,
		CreatedAt:     e.CreatedAt,
	})
	if err != nil {
		p.logger.Error("verify log marshal failed", "error", err)
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(e.AccountNumber),
		Value: value,
	}
	p.client.Produce(context.Background(), record, func(r *kgo.Record, err error) {
		if err != nil {
			p.logger.Warn("verify log publish failed",
				"topic", r.Topic,
				"error", err,
			)
		}
	})
}

// Close flushes buffered records and shuts the client down.
func (p *Publisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.client.Flush(ctx); err != nil {
		p.logger.Warn("verify log publisher closed with unflushed records", "error", err)
	}
	p.client.Close()
}
