package store

import (
	"context"
	"fmt"

	"github.com/feedrank/feedrank/ent"
	"github.com/feedrank/feedrank/ent/predicate"
	"github.com/feedrank/feedrank/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	action := sessionevent.Action(data.Action)
	if err := sessionevent.ActionValidator(action); err != nil {
		return fmt.Errorf("session event action: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(action).
		SetRoundsPlayed(data.RoundsPlayed).
		SetTotalScore(data.TotalScore).
		SetMaxPossibleScore(data.MaxPossibleScore).
		SetBestStreak(data.BestStreak).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// Sessions folds lifecycle events into one record per session. The latest
// closing event (reset or end) supplies the final counters.
func (r *eventRepo) Sessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	var preds []predicate.SessionEvent
	if !opts.From.IsZero() {
		preds = append(preds, sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, sessionevent.TimestampLTE(opts.To))
	}

	events, err := r.client.SessionEvent.Query().
		Where(preds...).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	var order []string
	byID := make(map[string]*SessionRecord)
	for _, e := range events {
		rec, ok := byID[e.SessionID]
		if !ok {
			rec = &SessionRecord{SessionID: e.SessionID, StartedAt: e.Timestamp}
			byID[e.SessionID] = rec
			order = append(order, e.SessionID)
		}
		if e.Action == sessionevent.ActionStart {
			continue
		}
		rec.EndedAt = e.Timestamp
		rec.EndAction = string(e.Action)
		rec.RoundsPlayed = e.RoundsPlayed
		rec.TotalScore = e.TotalScore
		rec.MaxPossibleScore = e.MaxPossibleScore
		rec.BestStreak = e.BestStreak
	}

	out := make([]SessionRecord, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, *byID[order[i]])
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}
