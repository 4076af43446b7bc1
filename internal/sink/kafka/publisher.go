package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafka "github.com/segmentio/kafka-go"

	"github.com/alexanderjulianmartinez/schema-catalog/internal/metadata"
)

// Publisher writes extracted table documents to the catalog ingest topic.
// Messages are keyed by "<schema>.<table>" so a table's revisions land in
// the same partition.
type Publisher struct {
	writer *kafka.Writer
}

func New(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, schema string, m *metadata.Metadata) error {
	value, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode %s.%s: %w", schema, m.Name, err)
	}
	msg := kafka.Message{
		Key:   []byte(schema + "." + m.Name),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s.%s: %w", schema, m.Name, err)
	}
	return nil
}

func (p *Publisher) Close() error { return p.writer.Close() }
