// Package nats wraps the single NATS connection the gateways publish
// lifecycle events through.
package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// Client is a thin publisher over one shared NATS connection.
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server at url.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Publish sends data to subject without waiting for delivery.
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
