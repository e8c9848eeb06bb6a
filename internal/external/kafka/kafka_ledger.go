package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaLedger writes one message per ledger row, keyed by player
type KafkaLedger struct {
	writer *kafka.Writer
}

func NewKafkaLedger(topic string) (*KafkaLedger, error) {
	// config
	kafkaurl := os.Getenv("KAFKA_LEDGER_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_LEDGER_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_LEDGER_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_LEDGER_PORT is not set")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaurl + ":" + kafkaport),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaLedger{writer}, nil
}

func (k *KafkaLedger) Name() string {
	return "kafka"
}

func (k *KafkaLedger) PublishLedger(ctx context.Context, ledger models.Ledger) error {
	msgs, err := ledgerMessages(ledger)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	return k.writer.WriteMessages(ctx, msgs...)
}

func (k *KafkaLedger) Close() error {
	return k.writer.Close()
}

func ledgerMessages(ledger models.Ledger) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(ledger.Rows))
	for rank, row := range ledger.Rows {
		value, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(row.PlayerKey),
			Value: value,
			Headers: []kafka.Header{
				{Key: "run_id", Value: []byte(ledger.RunID)},
				{Key: "rank", Value: []byte(fmt.Sprint(rank + 1))},
			},
		})
	}
	return msgs, nil
}
