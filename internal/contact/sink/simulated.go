// Package sink holds the contact-form delivery targets.
package sink

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/contact"
	"github.com/fekuna/omnipos-storefront/internal/contact/dto"
)

// SimulatedSink waits for Delay and reports success. It stands in for a
// real channel when no broker is configured.
type SimulatedSink struct {
	Delay time.Duration
}

var _ contact.Sink = (*SimulatedSink)(nil)

func NewSimulatedSink(delay time.Duration) *SimulatedSink {
	return &SimulatedSink{Delay: delay}
}

func (s *SimulatedSink) Deliver(ctx context.Context, _ *dto.Submission) error {
	if s.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *SimulatedSink) Name() string { return "simulated" }
