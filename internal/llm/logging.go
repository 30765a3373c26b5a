package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/feedrank/feedrank/internal/store"
)

// EventLog receives one event per request. store.EventRepo satisfies it.
type EventLog interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

type recording struct {
	inner  Provider
	events EventLog
	log    logrus.FieldLogger
}

// WithEventLog records every request made through p, successful or not. A
// failed append is logged and does not fail the request.
func WithEventLog(p Provider, events EventLog, log logrus.FieldLogger) Provider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &recording{inner: p, events: events, log: log}
}

func (r *recording) Info() Info { return r.inner.Info() }

func (r *recording) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)

	info := r.inner.Info()
	data := store.LLMRequestEventData{
		Provider:    info.Provider,
		Model:       info.Model,
		Purpose:     req.purpose(),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		var e *Error
		if errors.As(err, &e) {
			data.ResponseBody = string(e.Content)
		}
	}

	// The request's context may already be done; the record should still land.
	if aerr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), data); aerr != nil {
		r.log.WithError(aerr).WithFields(logrus.Fields{
			"provider": data.Provider,
			"purpose":  data.Purpose,
		}).Warn("could not record LLM request")
	}
	return resp, err
}

// describeRequest renders req for the event log.
func describeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString("system:\n" + req.System + "\n\n")
	}
	b.WriteString("prompt:\n" + req.Prompt + "\n")
	if req.Schema != nil {
		b.WriteString("\nschema " + req.Schema.Name + ":\n")
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			b.Write(def)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
