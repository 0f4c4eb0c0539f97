package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	StatsTopic = "storefront-stats"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventLogin          EventType = "LOGIN"
	EventRegister       EventType = "REGISTER"
	EventLogout         EventType = "LOGOUT"
	EventBookingCreated EventType = "BOOKING_CREATED"
	EventSearch         EventType = "SEARCH"
)

type EventStats struct {
	Type      EventType      `json:"type"`
	UserEmail string         `json:"userEmail,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
