package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const queue = "payout_review"

// RabbitReview notifies payout review that a new ledger is ready
type RabbitReview struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitReview() (rabbit *RabbitReview, err error) {
	// config
	rabbiturl := os.Getenv("RABBIT_URL")
	if rabbiturl == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	rabbitport := os.Getenv("RABBIT_PORT")
	if rabbitport == "" {
		return nil, fmt.Errorf("env RABBIT_PORT is not set")
	}
	rabbituser := os.Getenv("RABBIT_USER")
	if rabbituser == "" {
		return nil, fmt.Errorf("env RABBIT_USER is not set")
	}
	rabbitpass := os.Getenv("RABBIT_PASSWORD")
	if rabbitpass == "" {
		return nil, fmt.Errorf("env RABBIT_PASSWORD is not set")
	}

	rabbitconn := "amqp://" + rabbituser + ":" + rabbitpass + "@" + rabbiturl + ":" + rabbitport + "/reconcile"
	conn, err := amqp.Dial(rabbitconn)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &RabbitReview{conn, ch}, nil
}

func (r *RabbitReview) Close() {
	r.ch.Close()
	r.conn.Close()
}

func (r *RabbitReview) Name() string {
	return "rabbitmq"
}

// ReviewNotice - what the payout reviewers get, rows are fetched from the API
type ReviewNotice struct {
	RunID   string            `json:"run_id"`
	From    string            `json:"from,omitempty"`
	To      string            `json:"to,omitempty"`
	Summary models.RunSummary `json:"summary"`
}

func (r *RabbitReview) PublishLedger(ctx context.Context, ledger models.Ledger) error {
	msg, err := reviewNotice(ledger)
	if err != nil {
		return err
	}
	return r.ch.PublishWithContext(ctx,
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ledger.RunID,
			Body:         msg,
		})
}

func reviewNotice(ledger models.Ledger) ([]byte, error) {
	return json.Marshal(&ReviewNotice{
		RunID:   ledger.RunID,
		From:    ledger.From,
		To:      ledger.To,
		Summary: ledger.Summary,
	})
}
