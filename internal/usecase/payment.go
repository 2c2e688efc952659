package usecase

import (
	"context"
	"fmt"
	"time"
)

// processPayment simulates the payment-confirmation step as a bounded wait:
// it completes after the configured delay, fails when the timeout elapses
// first, and aborts when the caller's context is cancelled. It must never
// hang indefinitely.
func (s *bookingService) processPayment(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.PaymentTimeout)
	defer cancel()

	timer := time.NewTimer(s.cfg.PaymentDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("payment confirmation: %w", ctx.Err())
	}
}
