package clock

import (
	"context"
	"time"

	"go.uber.org/fx"
)

// Clock is the only wall-clock source in the application. Report
// computations receive an explicit as-of instant instead of reading
// time themselves, so results stay reproducible.
type Clock interface {
	Now(ctx context.Context) time.Time
}

type SystemClock struct{}

func (SystemClock) Now(_ context.Context) time.Time {
	return time.Now().UTC()
}

func New() Clock {
	return SystemClock{}
}

var Module = fx.Module("clock",
	fx.Provide(New),
)
