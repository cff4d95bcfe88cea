// Copyright 2025 Elysia Education
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package retry provides a bounded exponential-backoff retry policy for
// calls to unreliable external dependencies.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrInvalidMaxAttempts is returned when MaxAttempts is <= 0.
var ErrInvalidMaxAttempts = errors.New("MaxAttempts must be greater than 0")

// Policy describes how an operation is retried. A Policy value is
// immutable and safe to share across goroutines.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is the delay before the second attempt; it doubles on
	// each subsequent retry.
	BaseDelay time.Duration

	// MaxDelay caps the per-retry delay. Zero means uncapped.
	MaxDelay time.Duration

	// Retryable decides whether an error is worth retrying.
	// A nil predicate retries every error.
	Retryable func(error) bool
}

// Do runs operation under the policy, sleeping with exponential backoff
// between failed attempts. It returns nil on the first success, the last
// error once attempts are exhausted, a non-retryable error immediately,
// and the context error if ctx is done between attempts.
func (p Policy) Do(ctx context.Context, operation func() error) error {
	if p.MaxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		// Check context before attempting
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		if p.Retryable != nil && !p.Retryable(lastErr) {
			slog.Debug("operation failed with non-retryable error", "attempt", attempt, "error", lastErr)
			return lastErr
		}

		slog.Debug("operation failed, will retry",
			"attempt", attempt, "maxAttempts", p.MaxAttempts, "error", lastErr)

		// Don't sleep after the last attempt
		if attempt == p.MaxAttempts {
			break
		}

		// Exponential backoff: BaseDelay * 2^(attempt-1), capped at MaxDelay
		delay := p.BaseDelay
		for i := 1; i < attempt; i++ {
			delay *= 2
			if p.MaxDelay > 0 && delay >= p.MaxDelay {
				delay = p.MaxDelay
				break
			}
		}
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}

		// Sleep with context awareness
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}

// Do retries operation with exponential backoff using an uncapped policy.
// maxAttempts: maximum number of attempts (must be > 0)
// baseDelay: base delay between retries (doubles on each retry)
// Returns the error from the last attempt if all attempts fail.
func Do(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	return Policy{MaxAttempts: maxAttempts, BaseDelay: baseDelay}.Do(ctx, operation)
}
