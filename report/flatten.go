package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/kbukum/convodyn/analyzer"
	"github.com/kbukum/convodyn/util"
)

// Row is one conversation flattened to scalar columns. Keys follow the
// <speaker>_<metric>[_<submetric>] convention; pair scores use
// <responder>_after_<trigger>_<metric>. NaN values are omitted: a missing
// key means the score could not be computed.
type Row struct {
	ConversationID string             `json:"conversation_id"`
	Values         map[string]float64 `json:"values"`
}

// Flatten converts a record into a flat row. Speaker labels are sanitized
// to lowercase snake case so keys are stable across backends.
func Flatten(record *analyzer.Record) Row {
	row := Row{
		ConversationID: record.ConversationID,
		Values:         make(map[string]float64),
	}

	for metricName, result := range record.Features {
		for speaker, subs := range result.PerSpeaker {
			for sub, value := range subs {
				row.set(speakerKey(speaker, metricName, sub), value)
			}
		}
		for pair, value := range result.PerPair {
			key := fmt.Sprintf("%s_after_%s_%s",
				util.SanitizeKey(pair.Responder), util.SanitizeKey(pair.Trigger), metricName)
			row.set(key, value)
		}
		for sub, value := range result.Global {
			key := metricName
			if sub != "" {
				key = metricName + "_" + sub
			}
			row.set(key, value)
		}
	}
	return row
}

// FlattenAll flattens a slice of records in order.
func FlattenAll(records []*analyzer.Record) []Row {
	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = Flatten(record)
	}
	return rows
}

// Columns returns the sorted union of value keys across rows.
func Columns(rows []Row) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for key := range row.Values {
			seen[key] = true
		}
	}
	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

func (r Row) set(key string, value float64) {
	if math.IsNaN(value) {
		return
	}
	r.Values[key] = value
}

func speakerKey(speaker, metricName, sub string) string {
	key := util.SanitizeKey(speaker) + "_" + metricName
	if sub != "" {
		key += "_" + sub
	}
	return key
}
