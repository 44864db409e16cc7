//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/infrastructure/kafka"
	"github.com/jhoicas/Ventanilla-api/pkg/config"
)

func TestAuditPublisher_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v23.3.3",
		redpanda.WithAutoCreateTopics(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminar contenedor: %v", err)
		}
	})

	broker, err := container.KafkaSeedBroker(ctx)
	require.NoError(t, err)
	cfg := config.KafkaConfig{
		Brokers:      []string{broker},
		AuditTopic:   "ventanilla.search-audit",
		DialTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	require.NoError(t, kafka.NewBrokerChecker(cfg).Ping(ctx))

	pub := kafka.NewAuditPublisher(cfg)
	t.Cleanup(func() { _ = pub.Close() })

	// El primer envío puede fallar mientras se crea el tópico.
	entry := &entity.SearchAuditLogEntry{
		ID:         "a-1",
		CashierID:  "cajero-7",
		Timestamp:  time.Now().UTC(),
		ActionType: entity.AuditActionSearch,
	}
	require.Eventually(t, func() bool {
		return pub.Publish(ctx, entry) == nil
	}, 30*time.Second, time.Second)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   cfg.Brokers,
		Topic:     cfg.AuditTopic,
		Partition: 0,
	})
	t.Cleanup(func() { _ = reader.Close() })

	readCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)

	var ev kafka.AuditEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, "a-1", ev.ID)
	assert.Equal(t, "cajero-7", string(msg.Key))
}
