package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/Ventanilla-api/pkg/config"
)

// ErrNoBrokers no hay brokers configurados.
var ErrNoBrokers = errors.New("kafka: sin brokers configurados")

// BrokerChecker verifica que al menos un broker acepte conexión y responda metadatos.
type BrokerChecker struct {
	brokers []string
	dialer  *kafka.Dialer
}

// NewBrokerChecker crea el verificador del broker de mensajes.
func NewBrokerChecker(cfg config.KafkaConfig) *BrokerChecker {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 1500 * time.Millisecond
	}
	return &BrokerChecker{
		brokers: cfg.Brokers,
		dialer:  &kafka.Dialer{Timeout: timeout, DualStack: true},
	}
}

// Ping devuelve nil con el primer broker que responda.
func (c *BrokerChecker) Ping(ctx context.Context) error {
	if len(c.brokers) == 0 {
		return ErrNoBrokers
	}
	var errs []error
	for _, addr := range c.brokers {
		if err := c.ping(ctx, addr); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", addr, err))
			continue
		}
		return nil
	}
	return errors.Join(errs...)
}

func (c *BrokerChecker) ping(ctx context.Context, addr string) error {
	conn, err := c.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	_, err = conn.Brokers()
	return err
}
