package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2.0,
	}
}

// newTestRetry wraps mock with a retry layer whose sleeps are recorded
// instead of taken.
func newTestRetry(t *testing.T, mock *Mock) (*retrying, *[]time.Duration, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := WithRetry(mock, retryConfig(), 0, logger).(*retrying)
	var waits []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits, hook
}

func unavailable() MockReply {
	return MockReply{Err: &Error{Kind: KindUnavailable, Provider: "mock", Err: errors.New("down")}}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMock(MockReply{Content: json.RawMessage(validExplanation)})
	p, waits, _ := newTestRetry(t, mock)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != validExplanation {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(mock.Requests()) != 1 || len(*waits) != 0 {
		t.Fatalf("calls = %d waits = %v", len(mock.Requests()), *waits)
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMock(unavailable(), MockReply{Content: json.RawMessage(validExplanation)})
	p, waits, hook := newTestRetry(t, mock)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Requests()) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Requests()))
	}
	if len(*waits) != 1 || (*waits)[0] < 80*time.Millisecond || (*waits)[0] > 120*time.Millisecond {
		t.Errorf("waits = %v, want one wait of 100ms ±20%%", *waits)
	}

	if len(hook.Entries) != 1 {
		t.Fatalf("expected one retry log entry, got %d", len(hook.Entries))
	}
	e := hook.LastEntry()
	if e.Level != logrus.DebugLevel || e.Data["provider"] != "mock" || e.Data["purpose"] != PurposeExplanation || e.Data["attempt"] != 1 {
		t.Errorf("entry = %v %v", e.Level, e.Data)
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMock(unavailable(), unavailable(), unavailable(), MockReply{Content: json.RawMessage(`{}`)})
	p, waits, _ := newTestRetry(t, mock)

	_, err := p.Generate(context.Background(), Request{})
	if !IsKind(err, KindUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
	if len(mock.Requests()) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(mock.Requests()))
	}
	if len(*waits) != 2 {
		t.Fatalf("expected no sleep after the last attempt, got waits %v", *waits)
	}
	if (*waits)[1] < 160*time.Millisecond || (*waits)[1] > 240*time.Millisecond {
		t.Errorf("second wait = %v, want 200ms ±20%%", (*waits)[1])
	}
}

func TestRetry_NotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"truncated", &Error{Kind: KindTruncated, Provider: "mock", Content: json.RawMessage(`{`)}},
		{"rejected", &Error{Kind: KindRejected, Provider: "mock"}},
		{"cancelled", context.Canceled},
		{"deadline", context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMock(MockReply{Err: tt.err}, MockReply{Content: json.RawMessage(`{}`)})
			p, _, _ := newTestRetry(t, mock)

			_, err := p.Generate(context.Background(), Request{})
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if len(mock.Requests()) != 1 {
				t.Fatalf("expected 1 call (no retry), got %d", len(mock.Requests()))
			}
		})
	}
}

func TestRetry_InvalidOutputRetriedOnce(t *testing.T) {
	invalid := MockReply{Err: &Error{Kind: KindInvalidOutput, Provider: "mock", Err: errors.New("bad")}}
	mock := NewMock(invalid, invalid, MockReply{Content: json.RawMessage(`{}`)})
	p, _, _ := newTestRetry(t, mock)

	_, err := p.Generate(context.Background(), Request{})
	if !IsKind(err, KindInvalidOutput) {
		t.Fatalf("err = %v, want invalid output", err)
	}
	if len(mock.Requests()) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Requests()))
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMock(
		MockReply{Err: &Error{Kind: KindRateLimited, Provider: "mock", RetryAfter: 3 * time.Second}},
		MockReply{Content: json.RawMessage(`{}`)},
	)
	p, waits, _ := newTestRetry(t, mock)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*waits) != 1 || (*waits)[0] != 3*time.Second {
		t.Errorf("waits = %v, want [3s]", *waits)
	}
}

func TestRetry_BackoffCappedAtMaxWait(t *testing.T) {
	r := &retrying{cfg: RetryConfig{InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}}
	for attempt := range 5 {
		if w := r.backoff(attempt, errors.New("x")); w > 2400*time.Millisecond {
			t.Errorf("attempt %d: wait %v above cap plus jitter", attempt, w)
		}
	}
}

func TestRetry_CancelledDuringWait(t *testing.T) {
	mock := NewMock(unavailable(), MockReply{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1}, 0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if len(mock.Requests()) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Requests()))
	}
}

func TestRetry_TimeoutBoundsCall(t *testing.T) {
	mock := NewMock(unavailable(), MockReply{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1}, 20*time.Millisecond, nil)

	if _, err := p.Generate(context.Background(), Request{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestRetry_InfoDelegates(t *testing.T) {
	p := WithRetry(NewMock(), retryConfig(), 0, nil)
	if want := (Info{Provider: "mock", Model: "mock"}); p.Info() != want {
		t.Fatalf("info = %+v, want %+v", p.Info(), want)
	}
}
