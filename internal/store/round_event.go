package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/feedrank/feedrank/ent"
	"github.com/feedrank/feedrank/ent/predicate"
	"github.com/feedrank/feedrank/ent/roundevent"
)

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	submitted := data.SubmittedOrder
	if submitted == nil {
		submitted = []int{}
	}
	actual := data.ActualOrder
	if actual == nil {
		actual = []int{}
	}

	_, err = r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetRound(data.Round).
		SetExampleID(data.ExampleID).
		SetTitle(data.Title).
		SetDifficulty(data.Difficulty).
		SetConcept(data.Concept).
		SetSynthesized(data.Synthesized).
		SetItemCount(data.ItemCount).
		SetExactMatches(data.ExactMatches).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetPerfect(data.Perfect).
		SetStreak(data.Streak).
		SetSubmittedOrder(submitted).
		SetActualOrder(actual).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error) {
	var preds []predicate.RoundEvent
	if opts.After > 0 {
		preds = append(preds, roundevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, roundevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, roundevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, roundevent.TimestampLTE(opts.To))
	}

	q := r.client.RoundEvent.Query().
		Where(preds...).
		Order(ent.Desc(roundevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}

	out := make([]RoundRecord, len(events))
	for i, e := range events {
		out[i] = roundRecord(e)
	}
	return out, nil
}

func (r *eventRepo) ConceptStats(ctx context.Context) ([]ConceptStat, error) {
	events, err := r.client.RoundEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concept stats: %w", err)
	}

	byConcept := make(map[string]*ConceptStat)
	for _, e := range events {
		st, ok := byConcept[e.Concept]
		if !ok {
			st = &ConceptStat{Concept: e.Concept}
			byConcept[e.Concept] = st
		}
		st.Rounds++
		st.ExactMatches += e.ExactMatches
		st.Items += e.ItemCount
		if e.Perfect {
			st.Perfect++
		}
	}

	out := make([]ConceptStat, 0, len(byConcept))
	for _, st := range byConcept {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Concept < out[j].Concept })
	return out, nil
}

func (r *eventRepo) DifficultyStats(ctx context.Context) ([]DifficultyStat, error) {
	events, err := r.client.RoundEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query difficulty stats: %w", err)
	}

	byDifficulty := make(map[string]*DifficultyStat)
	for _, e := range events {
		st, ok := byDifficulty[e.Difficulty]
		if !ok {
			st = &DifficultyStat{Difficulty: e.Difficulty}
			byDifficulty[e.Difficulty] = st
		}
		st.Rounds++
		st.Score += e.Score
		st.MaxScore += e.MaxScore
		if e.Perfect {
			st.Perfect++
		}
	}

	out := make([]DifficultyStat, 0, len(byDifficulty))
	for _, st := range byDifficulty {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Difficulty < out[j].Difficulty })
	return out, nil
}

func roundRecord(e *ent.RoundEvent) RoundRecord {
	return RoundRecord{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		RoundEventData: RoundEventData{
			SessionID:      e.SessionID,
			Round:          e.Round,
			ExampleID:      e.ExampleID,
			Title:          e.Title,
			Difficulty:     e.Difficulty,
			Concept:        e.Concept,
			Synthesized:    e.Synthesized,
			ItemCount:      e.ItemCount,
			ExactMatches:   e.ExactMatches,
			Score:          e.Score,
			MaxScore:       e.MaxScore,
			Perfect:        e.Perfect,
			Streak:         e.Streak,
			SubmittedOrder: e.SubmittedOrder,
			ActualOrder:    e.ActualOrder,
			DurationMs:     e.DurationMs,
		},
	}
}
