package match

import (
	"context"
	"ctchen222/tictactoe/internal/events"
)

// Observer receives every event of a match in order. Returning an error
// aborts the match.
type Observer interface {
	OnEvent(ctx context.Context, ev events.Event) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, ev events.Event) error

func (f ObserverFunc) OnEvent(ctx context.Context, ev events.Event) error {
	return f(ctx, ev)
}

// Recorder is an Observer that keeps a transcript of the match.
type Recorder struct {
	Events []events.Event
}

func (r *Recorder) OnEvent(_ context.Context, ev events.Event) error {
	r.Events = append(r.Events, ev)
	return nil
}
