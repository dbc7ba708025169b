// Package metrics implements the conversational-dynamics metrics: speaking
// time, turn length, pauses, adaptability, response time, backchannels, and
// speaker rate.
//
// Every metric implements the Feature interface, a pure stateless transform
// of an immutable conversation into a Result. Metrics never depend on each
// other's output and may run concurrently over the same turn sequence.
//
// Insufficient data (a speaker with one turn, a pair with one transition) is
// reported as NaN for the affected key, never as an error. Hard errors are
// reserved for invalid input, which the turn builder rejects before any
// metric runs.
//
// # Usage
//
//	reg := metrics.Default()
//	features, err := reg.CreateAll([]string{"speaking_time", "turn_length"})
//	for _, f := range features {
//	    result, _ := f.Extract(conv)
//	    ...
//	}
package metrics
