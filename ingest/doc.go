// Package ingest decodes diarization output into builder input.
//
// Two wire formats are supported: JSON segment documents (the shape most
// diarization backends emit) and NIST RTTM rich-transcription files.
package ingest
