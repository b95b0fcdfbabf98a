package retrier

import (
	"context"
	"time"
)

// Reference interface shape
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Nil retries every error, non-nil retries only those the function approves
	ShouldRetry ShouldRetryFunc
}
