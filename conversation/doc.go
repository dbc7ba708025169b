// Package conversation defines the core data model for conversational
// dynamics analysis: raw diarization intervals, merged speaker turns, and the
// turn builder that converts one into the other.
//
// A Conversation is built once per analysis run and is immutable thereafter.
// All metrics are pure functions of the shared turn sequence.
//
// # Usage
//
//	builder := conversation.NewBuilder(conversation.DefaultMergeGapTolerance)
//	conv, err := builder.Build(intervals)
//	if err != nil {
//	    return err // INVALID_INPUT aborts this conversation only
//	}
//
// Known limitation: simultaneous speech is not resolved. Overlapping intervals
// from different speakers each become their own turn, ordered by start time.
package conversation
