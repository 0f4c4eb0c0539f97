package handler

import (
	"encoding/json"

	"github.com/Astemirdum/car-rental-storefront/pkg/kafka"
	"github.com/IBM/sarama"
)

type StatsLog interface {
	Log(ev kafka.EventStats) error
}

type statsLog struct {
	producer sarama.SyncProducer
	topic    string
}

// NewStatsLog publishes events to topic. A nil producer drops them.
func NewStatsLog(producer sarama.SyncProducer, topic string) StatsLog {
	if producer == nil {
		return nopStatsLog{}
	}
	return &statsLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *statsLog) Log(ev kafka.EventStats) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(ev.Type),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = l.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

type nopStatsLog struct{}

func (nopStatsLog) Log(kafka.EventStats) error { return nil }
