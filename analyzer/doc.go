// Package analyzer orchestrates conversational-dynamics analysis: it builds
// the turn sequence once per conversation, runs every configured metric over
// the shared immutable result, and assembles a flat Record per conversation.
//
// Metrics are independent of one another and run concurrently; each writes
// only to its own result slot, so no locking is involved. Batches fan out
// over a bounded worker pool; conversations are embarrassingly parallel and
// one conversation's failure never touches the rest.
//
// # Usage
//
//	a, err := analyzer.New(analyzer.Config{}, nil, log)
//	record, err := a.Analyze(ctx, "conv-1", intervals)
package analyzer
