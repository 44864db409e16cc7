package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/pkg/config"
)

type captureWriter struct {
	msgs     []kafka.Message
	err      error
	deadline bool
}

func (w *captureWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *captureWriter) Close() error { return nil }

func TestPublish_MensajeJSONConLlaveDelCajero(t *testing.T) {
	w := &captureWriter{}
	p := newAuditPublisher(w, time.Second)
	sel := "c1"
	ts := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), &entity.SearchAuditLogEntry{
		ID:                 "a-1",
		CashierID:          "cajero-7",
		Timestamp:          ts,
		SearchCriteria:     map[string]any{"rfc": "EUVR800101AB1"},
		ResultsCount:       1,
		SelectedCustomerID: &sel,
		ActionType:         entity.AuditActionSelect,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.True(t, w.deadline)

	msg := w.msgs[0]
	assert.Equal(t, "cajero-7", string(msg.Key))
	assert.Equal(t, ts, msg.Time)

	var ev AuditEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, "a-1", ev.ID)
	assert.Equal(t, "select", ev.ActionType)
	assert.Equal(t, "c1", *ev.SelectedCustomerID)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "application/json", headers["content-type"])
	assert.Equal(t, "select", headers["action-type"])
}

func TestPublish_ErrorDelWriter(t *testing.T) {
	w := &captureWriter{err: errors.New("leader not available")}
	p := newAuditPublisher(w, 0)

	err := p.Publish(context.Background(), &entity.SearchAuditLogEntry{ID: "a-1", ActionType: "search"})
	assert.ErrorContains(t, err, "leader not available")
}

func TestBrokerChecker_SinBrokers(t *testing.T) {
	c := NewBrokerChecker(config.KafkaConfig{})
	assert.ErrorIs(t, c.Ping(context.Background()), ErrNoBrokers)
}

func TestBrokerChecker_BrokerInalcanzable(t *testing.T) {
	c := NewBrokerChecker(config.KafkaConfig{Brokers: []string{"127.0.0.1:1"}, DialTimeout: 200 * time.Millisecond})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, c.Ping(ctx))
}
