package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"github.com/muhammadheryan/railway-reservation/utils/metrics"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	// retryCountHeader counts how often a hold message went back through the delay exchange.
	retryCountHeader = "x-retry-count"

	retryBaseDelay = 5 * time.Second
	retryMaxDelay  = 5 * time.Minute
	requeuePause   = 5 * time.Second
)

// retryPublisher is the part of *amqp091.Channel used to schedule retries.
type retryPublisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type Consumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	publisher retryPublisher
	apiURL    string
	apiKey    string
	client    *http.Client
	pause     time.Duration
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:      conn,
		channel:   channel,
		publisher: channel,
		apiURL:    apiURL,
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		pause:     requeuePause,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		HoldQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.process(ctx, msg)
			}
		}
	}()

	return nil
}

// process settles one delivery. A failed expiry goes back through the delay
// exchange with a growing x-delay so one stuck booking cannot block the queue.
// Only when that publish fails is the delivery nacked, after a short pause.
func (c *Consumer) process(ctx context.Context, msg amqp091.Delivery) {
	if c.handle(msg.Body) {
		_ = msg.Ack(false)
		return
	}

	attempt := retryCount(msg.Headers) + 1
	if err := c.scheduleRetry(msg.Body, attempt); err != nil {
		logger.Error("[HoldConsumer] schedule retry", zap.Int("attempt", attempt), zap.String("error", err.Error()))
		select {
		case <-ctx.Done():
		case <-time.After(c.pause):
		}
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}

func (c *Consumer) scheduleRetry(body []byte, attempt int) error {
	return c.publisher.Publish(
		HoldExchange,   // exchange
		HoldRoutingKey, // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay":        retryDelay(attempt).Milliseconds(),
				retryCountHeader: int32(attempt),
			},
		},
	)
}

// retryDelay doubles from retryBaseDelay per attempt, capped at retryMaxDelay.
func retryDelay(attempt int) time.Duration {
	d := retryBaseDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return d
}

func retryCount(headers amqp091.Table) int {
	switch n := headers[retryCountHeader].(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// handle reports whether the delivery is done with. Malformed bodies are
// dropped; failed API calls are retried by the caller.
func (c *Consumer) handle(body []byte) bool {
	var hold BookingHoldMessage
	if err := json.Unmarshal(body, &hold); err != nil || hold.PNR == "" {
		logger.Error("[HoldConsumer] drop malformed message", zap.ByteString("body", body))
		metrics.HoldMessages.WithLabelValues("dropped").Inc()
		return true
	}

	if err := c.callExpireAPI(hold.PNR); err != nil {
		logger.Error("[HoldConsumer] expire booking", zap.String("pnr", hold.PNR), zap.String("error", err.Error()))
		metrics.HoldMessages.WithLabelValues("retried").Inc()
		return false
	}

	metrics.HoldMessages.WithLabelValues("expired").Inc()
	logger.Info("[HoldConsumer] hold processed", zap.String("pnr", hold.PNR))
	return true
}

func (c *Consumer) callExpireAPI(pnr string) error {
	endpoint := fmt.Sprintf("%s/internal/v1/booking/%s/expire", c.apiURL, url.PathEscape(pnr))

	req, err := http.NewRequest(http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "booking-hold-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx means the booking is gone or already settled; retrying won't help.
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
