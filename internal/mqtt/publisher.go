// Package mqtt publishes decoded meter groups to an MQTT broker.
package mqtt

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const defaultTimeout = 5 * time.Second

// Publisher pushes one JSON payload per decoded group to a fixed topic.
type Publisher struct {
	client paho.Client
	topic  string
}

// Connect opens a connection to the broker, e.g. "tcp://host:1883".
func Connect(broker, topic, username, password string) (*Publisher, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(fmt.Sprintf("goteleinfo_%d", rand.Intn(1000)))
	if username != "" {
		opts.SetUsername(username)
		opts.SetPassword(password)
	}
	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(defaultTimeout) {
		return nil, fmt.Errorf("connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", broker, err)
	}
	return &Publisher{client: client, topic: topic}, nil
}

// Publish sends the fields as a JSON payload.
func (p *Publisher) Publish(fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	token := p.client.Publish(p.topic, 0, false, payload)
	if !token.WaitTimeout(defaultTimeout) {
		return fmt.Errorf("publish to %s: timed out", p.topic)
	}
	return token.Error()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(uint(defaultTimeout.Milliseconds()))
}
