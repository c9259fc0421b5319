package rabbitmq

import (
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	HoldExchange   = "booking_hold_exchange"
	HoldQueue      = "booking_hold_queue"
	HoldRoutingKey = "booking_hold"
)

// BookingHoldMessage is delivered once the payment window of a booking closes.
type BookingHoldMessage struct {
	PNR       string    `json:"pnr"`
	UserID    uint64    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// holdDelay is the x-delay header value in milliseconds, never negative.
func holdDelay(expiresAt, now time.Time) int64 {
	delayMs := expiresAt.Sub(now).Milliseconds()
	if delayMs < 0 {
		return 0
	}
	return delayMs
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareHoldTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareHoldTopology needs the rabbitmq_delayed_message_exchange plugin on the broker.
func declareHoldTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		HoldExchange,        // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		HoldQueue, // name
		true,      // durable
		false,     // auto-delete
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(HoldQueue, HoldRoutingKey, HoldExchange, false, nil)
}
