package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
)

// FakeDecoder is a document decoder double. When DecodeFunc is set it
// decides the outcome, otherwise Pages and Err are returned as-is.
type FakeDecoder struct {
	DecoderName string
	Types       []string
	Pages       []string
	Err         error
	DecodeFunc  func(data []byte) ([]string, error)

	calls atomic.Int32
}

func (f *FakeDecoder) Name() string {
	if f.DecoderName == "" {
		return "fake"
	}
	return f.DecoderName
}

func (f *FakeDecoder) MIMETypes() []string { return f.Types }

func (f *FakeDecoder) Decode(ctx context.Context, data []byte) ([]string, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.DecodeFunc != nil {
		return f.DecodeFunc(data)
	}
	return f.Pages, f.Err
}

// Calls reports how many times Decode ran
func (f *FakeDecoder) Calls() int {
	return int(f.calls.Load())
}

// PublishedEvent is one call captured by RecordingPublisher
type PublishedEvent struct {
	Ctx       context.Context
	EventType string
	Data      []byte
}

// RecordingPublisher captures published events for testing
type RecordingPublisher struct {
	Err error

	mu     sync.Mutex
	events []PublishedEvent
}

func (p *RecordingPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	if p.Err != nil {
		return p.Err
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, PublishedEvent{Ctx: ctx, EventType: eventType, Data: jsonData})
	return nil
}

// Events returns a copy of the captured events
func (p *RecordingPublisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PublishedEvent(nil), p.events...)
}
