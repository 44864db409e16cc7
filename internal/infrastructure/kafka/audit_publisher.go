package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/pkg/config"
)

const sourceService = "ventanilla-api"

// messageWriter lo que el publicador necesita de *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuditEvent forma publicada en el tópico de bitácora.
type AuditEvent struct {
	ID                 string         `json:"id"`
	CashierID          string         `json:"cashierId"`
	Timestamp          time.Time      `json:"timestamp"`
	SearchCriteria     map[string]any `json:"searchCriteria"`
	ResultsCount       int            `json:"resultsCount"`
	SelectedCustomerID *string        `json:"selectedCustomerId,omitempty"`
	ActionType         string         `json:"actionType"`
}

// AuditPublisher publica entradas de bitácora como JSON, con el id del cajero como llave
// para conservar el orden por cajero dentro de una partición.
type AuditPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
}

// NewAuditPublisher crea el writer síncrono sobre el tópico de bitácora.
func NewAuditPublisher(cfg config.KafkaConfig) *AuditPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.AuditTopic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return newAuditPublisher(w, cfg.WriteTimeout)
}

func newAuditPublisher(w messageWriter, timeout time.Duration) *AuditPublisher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &AuditPublisher{writer: w, writeTimeout: timeout}
}

// Publish serializa y envía la entrada.
func (p *AuditPublisher) Publish(ctx context.Context, e *entity.SearchAuditLogEntry) error {
	payload, err := json.Marshal(AuditEvent{
		ID:                 e.ID,
		CashierID:          e.CashierID,
		Timestamp:          e.Timestamp,
		SearchCriteria:     e.SearchCriteria,
		ResultsCount:       e.ResultsCount,
		SelectedCustomerID: e.SelectedCustomerID,
		ActionType:         e.ActionType,
	})
	if err != nil {
		return fmt.Errorf("audit publish: serializar: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.CashierID),
		Value: payload,
		Time:  e.Timestamp,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "source-service", Value: []byte(sourceService)},
			{Key: "action-type", Value: []byte(e.ActionType)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("audit publish: %w", err)
	}
	return nil
}

// Close cierra el writer.
func (p *AuditPublisher) Close() error {
	return p.writer.Close()
}
