package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/convodyn/conversation"
	"github.com/kbukum/convodyn/logger"
	"github.com/kbukum/convodyn/metrics"
	"github.com/kbukum/convodyn/observability"
)

// Analyzer orchestrates one conversation's analysis: it builds the turn
// sequence once, then runs every configured metric over it. Analyzers are
// immutable after construction and safe for concurrent use.
type Analyzer struct {
	cfg      Config
	builder  *conversation.Builder
	features []metrics.Feature
	log      *logger.Logger
	analyzed metric.Int64Counter
}

// New creates an Analyzer from configuration and a metric registry. Passing
// a nil registry uses the built-in metrics.
func New(cfg Config, reg *metrics.Registry, log *logger.Logger) (*Analyzer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = metrics.Default()
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	features, err := reg.CreateAll(cfg.Metrics)
	if err != nil {
		return nil, err
	}

	analyzed, _ := observability.Meter("convodyn/analyzer").Int64Counter(
		"convodyn.conversations.analyzed",
		metric.WithDescription("Conversations analyzed, by outcome."),
	)

	return &Analyzer{
		cfg:      cfg,
		builder:  conversation.NewBuilder(cfg.MergeGapTolerance),
		features: features,
		log:      log.WithComponent("analyzer"),
		analyzed: analyzed,
	}, nil
}

// Analyze runs the full pipeline for one conversation: optional
// shortest-speaker removal, turn building, then all metrics concurrently over
// the shared immutable turn sequence. A turn-builder failure aborts this
// conversation only.
func (a *Analyzer) Analyze(ctx context.Context, id string, intervals []conversation.Interval) (*Record, error) {
	if id == "" {
		id = uuid.New().String()
	}
	ctx, span := observability.StartSpan(ctx, "conversation.analyze")
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrConversationID, id)

	start := time.Now()

	if a.cfg.DropShortestSpeaker {
		intervals = dropShortestSpeaker(intervals)
	}

	conv, err := a.builder.Build(intervals)
	if err != nil {
		a.countOutcome(ctx, "error")
		observability.SetSpanError(ctx, err)
		a.log.Warn("turn building failed", logger.Fields(
			logger.FieldConversationID, id,
			logger.FieldError, err.Error(),
		))
		return nil, fmt.Errorf("build turns for conversation %s: %w", id, err)
	}
	conv.ID = id
	observability.SetSpanAttribute(ctx, observability.AttrTurnCount, len(conv.Turns))

	results := make([]*metrics.Result, len(a.features))
	errs := make([]error, len(a.features))

	var wg sync.WaitGroup
	for i, feature := range a.features {
		wg.Add(1)
		go func(i int, feature metrics.Feature) {
			defer wg.Done()
			results[i], errs[i] = feature.Extract(conv)
		}(i, feature)
	}
	wg.Wait()

	record := &Record{
		ConversationID: id,
		Speakers:       conv.Speakers(),
		TurnCount:      len(conv.Turns),
		WallClock:      conv.WallClock(),
		TalkTime:       conv.TalkTime(),
		Features:       make(map[string]*metrics.Result, len(a.features)),
		AnalyzedAt:     time.Now().UTC(),
	}
	for i, feature := range a.features {
		if errs[i] != nil {
			a.countOutcome(ctx, "error")
			observability.SetSpanError(ctx, errs[i])
			return nil, fmt.Errorf("metric %s for conversation %s: %w", feature.Name(), id, errs[i])
		}
		record.Features[feature.Name()] = results[i]
	}

	a.countOutcome(ctx, "ok")
	a.log.Debug("conversation analyzed", logger.Fields(
		logger.FieldConversationID, id,
		logger.FieldTurns, record.TurnCount,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return record, nil
}

// Metrics returns the names of the configured metrics in run order.
func (a *Analyzer) Metrics() []string {
	names := make([]string, len(a.features))
	for i, f := range a.features {
		names[i] = f.Name()
	}
	return names
}

func (a *Analyzer) countOutcome(ctx context.Context, outcome string) {
	if a.analyzed == nil {
		return
	}
	a.analyzed.Add(ctx, 1, observability.WithOutcome(outcome))
}

// dropShortestSpeaker removes the speaker with the least total interval
// duration when more than two speakers are present. With two or fewer
// speakers the input is returned unchanged.
func dropShortestSpeaker(intervals []conversation.Interval) []conversation.Interval {
	totals := make(map[string]float64)
	for _, iv := range intervals {
		totals[iv.Speaker] += iv.Duration()
	}
	if len(totals) <= 2 {
		return intervals
	}

	shortest := ""
	for speaker, total := range totals {
		// Ties break on the label so the result is deterministic.
		if shortest == "" || total < totals[shortest] ||
			(total == totals[shortest] && speaker < shortest) {
			shortest = speaker
		}
	}

	kept := make([]conversation.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Speaker != shortest {
			kept = append(kept, iv)
		}
	}
	return kept
}
