package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

type retrying struct {
	inner   Provider
	cfg     RetryConfig
	timeout time.Duration
	log     logrus.FieldLogger
	sleep   func(ctx context.Context, d time.Duration) error
}

// WithRetry retries transient failures with exponential backoff and ±20%
// jitter. A positive timeout bounds the whole call, retries included.
func WithRetry(p Provider, cfg RetryConfig, timeout time.Duration, log logrus.FieldLogger) Provider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &retrying{inner: p, cfg: cfg, timeout: timeout, log: log, sleep: sleepCtx}
}

func (r *retrying) Info() Info { return r.inner.Info() }

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	attempts := max(r.cfg.MaxAttempts, 1)
	invalidSeen := false
	var err error
	for attempt := range attempts {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err, &invalidSeen) || attempt == attempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		info := r.inner.Info()
		r.log.WithError(err).WithFields(logrus.Fields{
			"provider": info.Provider,
			"model":    info.Model,
			"purpose":  req.purpose(),
			"attempt":  attempt + 1,
			"wait":     wait.String(),
		}).Debug("retrying LLM request")

		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

// retryable reports whether err is worth another attempt. An invalid reply
// is retried once per call.
func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return true
	}
	switch e.Kind {
	case KindTruncated, KindRejected:
		return false
	case KindInvalidOutput:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
	}
	return true
}

func (r *retrying) backoff(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if r.cfg.MaxWait > 0 {
		wait = math.Min(wait, float64(r.cfg.MaxWait))
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
