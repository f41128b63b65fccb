package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultLatency is the simulated round trip of a submit.
const DefaultLatency = time.Second

// Simulated waits Latency and then accepts every request. It performs no
// authentication and stores nothing.
type Simulated struct {
	Latency time.Duration
}

func NewSimulated(latency time.Duration) *Simulated {
	if latency < 0 {
		latency = 0
	}
	return &Simulated{Latency: latency}
}

func (s *Simulated) Authenticate(ctx context.Context, c Credentials) error {
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	log.Debug().Str("user", Mask(c.Username)).Msg("simulated authentication accepted")
	return nil
}

func (s *Simulated) Register(ctx context.Context, p Profile) error {
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	log.Debug().Str("user", Mask(p.Username)).Msg("simulated registration accepted")
	return nil
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
