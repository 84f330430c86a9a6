package services

import (
	"context"
	"time"

	derrors "github.com/saucesteals/silk/internal/errors"
)

// sleeper suspends the cooperative task between steps. Tests inject a no-op
// to run the multi-step loops instantly.
type sleeper func(ctx context.Context, d time.Duration) error

// sleepCtx waits for the duration unless the context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return derrors.Wrap(ctx.Err(), derrors.CodeTimeout, "operation canceled while waiting")
	case <-timer.C:
		return nil
	}
}
