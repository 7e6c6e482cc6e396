package repository

import (
	"context"
	"time"

	domrepo "FinScreen/internal/domain/repository"
	applogger "FinScreen/pkg/logger"
)

type messagePublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// fetchMessage is the wire form of a FetchEvent.
type fetchMessage struct {
	Seq        uint64    `json:"seq"`
	Endpoint   string    `json:"endpoint"`
	Ticker     string    `json:"ticker,omitempty"`
	Period     string    `json:"period"`
	At         time.Time `json:"at"`
	DurationMS int64     `json:"durationMs"`
	OK         bool      `json:"ok"`
	Error      string    `json:"error,omitempty"`
}

// KafkaFetchPublisher implements FetchObserver by publishing every provider
// call to a topic, keyed by ticker.
type KafkaFetchPublisher struct {
	producer messagePublisher
	topic    string
	l        *applogger.Logger
}

func NewKafkaFetchPublisher(producer messagePublisher, topic string, l *applogger.Logger) *KafkaFetchPublisher {
	return &KafkaFetchPublisher{producer: producer, topic: topic, l: l}
}

func (p *KafkaFetchPublisher) ObserveFetch(ctx context.Context, ev domrepo.FetchEvent) {
	msg := fetchMessage{
		Seq:        ev.Seq,
		Endpoint:   ev.Endpoint,
		Ticker:     ev.Ticker,
		Period:     ev.Period,
		At:         ev.At.UTC(),
		DurationMS: ev.Duration.Milliseconds(),
		OK:         ev.Err == nil,
	}
	if ev.Err != nil {
		msg.Error = ev.Err.Error()
	}

	// the fetch context may be cancelled as soon as we return
	if err := p.producer.Publish(context.WithoutCancel(ctx), p.topic, []byte(ev.Ticker), msg); err != nil {
		p.l.Warn("kafka publish fetch event failed",
			applogger.String("topic", p.topic),
			applogger.String("ticker", ev.Ticker),
			applogger.Error(err),
		)
	}
}

func (p *KafkaFetchPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

var _ domrepo.FetchObserver = (*KafkaFetchPublisher)(nil)
