package analyzer

import (
	"context"
	"sync"

	"github.com/kbukum/convodyn/conversation"
	"github.com/kbukum/convodyn/logger"
)

// Input is one conversation queued for batch analysis.
type Input struct {
	// ID identifies the conversation; a uuid is assigned when empty.
	ID string `json:"id"`
	// Intervals is the raw diarization stream.
	Intervals []conversation.Interval `json:"intervals"`
}

// BatchItem is the outcome for one conversation in a batch. Exactly one of
// Record and Err is set.
type BatchItem struct {
	ID     string  `json:"id"`
	Record *Record `json:"record,omitempty"`
	Err    error   `json:"-"`
}

// AnalyzeBatch fans conversations out over a bounded worker pool. Each
// conversation is independent: one failure never affects the others, and
// results come back in input order. Cancelling the context stops unstarted
// work; items never reached carry the context error.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []Input) []BatchItem {
	items := make([]BatchItem, len(inputs))
	if len(inputs) == 0 {
		return items
	}

	workers := a.cfg.Workers
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				in := inputs[i]
				record, err := a.Analyze(ctx, in.ID, in.Intervals)
				items[i] = BatchItem{ID: in.ID, Record: record, Err: err}
				if err == nil && in.ID == "" {
					items[i].ID = record.ConversationID
				}
			}
		}()
	}

feed:
	for i := range inputs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(inputs); j++ {
				if items[j].Record == nil && items[j].Err == nil {
					items[j] = BatchItem{ID: inputs[j].ID, Err: ctx.Err()}
				}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		a.log.Warn("batch finished with failures", logger.Fields(
			"total", len(items),
			"failed", failed,
		))
	}
	return items
}
