package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/resumeparser/resume-parser-backend/pkg/config"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
)

// ErrClosed is returned when publishing after Close
var ErrClosed = errors.New("rabbitmq connection closed")

// RabbitMQ owns the broker connection used to publish events
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  *config.RabbitMQConfig
	logger  *logger.Logger
	mu      sync.RWMutex
	dialMu  sync.Mutex
	closed  bool
}

// New connects to RabbitMQ, retrying up to MaxRetries times with
// ReconnectDelay between attempts.
func New(ctx context.Context, cfg *config.RabbitMQConfig, log *logger.Logger) (*RabbitMQ, error) {
	rmq := &RabbitMQ{
		config: cfg,
		logger: log.WithComponent("rabbitmq"),
	}

	if err := rmq.dialWithRetry(ctx); err != nil {
		return nil, err
	}

	return rmq, nil
}

// dialTimeout bounds the TCP and AMQP handshake of a single dial
const dialTimeout = 5 * time.Second

// ErrReconnecting is returned to publishers that find another publisher
// already re-dialing the broker
var ErrReconnecting = errors.New("rabbitmq reconnect in progress")

// dial opens a connection and channel without touching r's state
func (r *RabbitMQ) dial() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.DialConfig(r.config.URL, amqp.Config{
		Locale: "en_US",
		Dial:   amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	r.logger.Info().Msg("connected to RabbitMQ")
	return conn, ch, nil
}

// dialWithRetry is used at startup only, before r is shared.
func (r *RabbitMQ) dialWithRetry(ctx context.Context) error {
	attempts := max(r.config.MaxRetries, 1)

	var err error
	for i := 1; i <= attempts; i++ {
		var (
			conn *amqp.Connection
			ch   *amqp.Channel
		)
		if conn, ch, err = r.dial(); err == nil {
			r.conn, r.channel = conn, ch
			return nil
		}

		r.logger.Warn().Err(err).Int("attempt", i).Int("max_attempts", attempts).Msg("RabbitMQ not reachable")
		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.config.ReconnectDelay):
		}
	}

	return fmt.Errorf("giving up on RabbitMQ after %d attempts: %w", attempts, err)
}

// reconnect replaces a dropped connection with a single dial. It runs on the
// publish path, so it never retries and never holds mu while dialing.
// Publishers arriving while a dial is in flight get ErrReconnecting.
func (r *RabbitMQ) reconnect() error {
	if !r.dialMu.TryLock() {
		return ErrReconnecting
	}
	defer r.dialMu.Unlock()

	r.mu.RLock()
	closed := r.closed
	healthy := r.conn != nil && !r.conn.IsClosed() && r.channel != nil && !r.channel.IsClosed()
	r.mu.RUnlock()

	if closed {
		return ErrClosed
	}
	if healthy {
		return nil
	}

	conn, ch, err := r.dial()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		conn.Close()
		return ErrClosed
	}
	if r.conn != nil {
		r.conn.Close()
	}
	r.conn, r.channel = conn, ch
	return nil
}

// publish sends msg, reconnecting once if the channel was closed under us
func (r *RabbitMQ) publish(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error {
	ch, err := r.currentChannel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, exchange, routingKey, false, false, msg)
	if !errors.Is(err, amqp.ErrClosed) {
		return err
	}

	r.logger.Warn().Msg("channel closed, reconnecting before publish")
	if err := r.reconnect(); err != nil {
		return err
	}

	ch, err = r.currentChannel()
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, exchange, routingKey, false, false, msg)
}

func (r *RabbitMQ) currentChannel() (*amqp.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed || r.channel == nil {
		return nil, ErrClosed
	}
	return r.channel, nil
}

// Close closes the RabbitMQ connection
func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			r.logger.Warn().Err(err).Msg("failed to close channel")
		}
	}

	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}

	r.logger.Info().Msg("RabbitMQ connection closed")
	return nil
}

// Health reports whether the broker connection is usable
func (r *RabbitMQ) Health() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed || r.conn == nil || r.conn.IsClosed() {
		return map[string]string{"status": "unhealthy", "error": "connection closed"}
	}
	return map[string]string{"status": "healthy"}
}

// DeclareExchange declares a durable topic exchange
func (r *RabbitMQ) DeclareExchange(name string) error {
	ch, err := r.currentChannel()
	if err != nil {
		return err
	}

	return ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
}
