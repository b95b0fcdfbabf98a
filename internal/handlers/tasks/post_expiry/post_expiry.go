package post_expiry

import (
	"context"
	"time"

	"maak/pkg/logger"
)

type Backend interface {
	ExpireOldPosts(ctx context.Context) error
}

// PostExpiry periodically asks the backend to expire trips whose departure
// has passed and parcel requests whose window has closed. The sweep is
// idempotent on the backend side, so overlapping triggers are harmless.
type PostExpiry struct {
	log      logger.Logger
	backend  Backend
	interval time.Duration
}

func NewPostExpiry(log logger.Logger, backend Backend, interval time.Duration) *PostExpiry {
	return &PostExpiry{
		log:      log,
		backend:  backend,
		interval: interval,
	}
}

func (p *PostExpiry) TTL() time.Duration {
	return p.interval
}

func (p *PostExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	if err := p.backend.ExpireOldPosts(ctxWithTimeout); err != nil {
		return err
	}

	p.log.Info("post expiry sweep")
	return nil
}

func (p *PostExpiry) Info() string {
	return "post expiry sweep"
}
