package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/feedrank/feedrank/internal/store"
)

type recordingLog struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingLog) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestEventLog_RecordsSuccess(t *testing.T) {
	events := &recordingLog{}
	mock := NewMock(MockReply{
		Content: json.RawMessage(`{"headline":"ok"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithEventLog(mock, events, nil)

	_, err := p.Generate(context.Background(), Request{
		System: "sys prompt",
		Prompt: "rank these",
		Schema: &Schema{Name: "round-explanation", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	ev := events.events[0]
	if ev.Provider != "mock" || ev.Model != "mock" || ev.Purpose != PurposeExplanation {
		t.Errorf("event = %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("event usage = %+v", ev)
	}
	for _, want := range []string{"system:\nsys prompt", "prompt:\nrank these", "schema round-explanation:", `{"type":"object"}`} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
	if ev.ResponseBody != `{"headline":"ok"}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestEventLog_RecordsFailure(t *testing.T) {
	events := &recordingLog{}
	bad := json.RawMessage(`{"headline":"Vol`)
	mock := NewMock(MockReply{Err: &Error{Kind: KindTruncated, Provider: "mock", Content: bad}})
	p := WithEventLog(mock, events, nil)

	_, err := p.Generate(context.Background(), Request{Purpose: "summary", Prompt: "x"})
	if !IsKind(err, KindTruncated) {
		t.Fatalf("err = %v, want truncated", err)
	}
	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	ev := events.events[0]
	if ev.Success || ev.ErrorMessage == "" || ev.Purpose != "summary" {
		t.Errorf("event = %+v", ev)
	}
	if ev.ResponseBody != string(bad) {
		t.Errorf("response body = %q, want the truncated reply", ev.ResponseBody)
	}
}

func TestEventLog_RecordsAfterCancel(t *testing.T) {
	events := &recordingLog{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := WithEventLog(NewMock(), events, nil)
	if _, err := p.Generate(ctx, Request{Prompt: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(events.events) != 1 {
		t.Fatalf("expected the cancelled request to be recorded, got %d events", len(events.events))
	}
}

func TestEventLog_AppendFailureIsLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	events := &recordingLog{err: errors.New("disk full")}
	mock := NewMock(MockReply{Content: json.RawMessage(`{}`)})
	p := WithEventLog(mock, events, logger)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("append failure leaked into the request: %v", err)
	}
	if len(hook.Entries) != 1 || hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("expected one warning, got %d entries", len(hook.Entries))
	}
	if hook.LastEntry().Data["provider"] != "mock" {
		t.Errorf("fields = %v", hook.LastEntry().Data)
	}
}
