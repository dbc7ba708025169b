package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kbukum/convodyn/errors"
)

// WriteJSONL writes one JSON object per row. Missing scores are simply
// absent from the values map.
func WriteJSONL(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return errors.Internal(err)
		}
	}
	return nil
}

// WriteCSV writes rows as a CSV table. The header is the sorted union of
// keys across all rows plus a leading conversation_id column; a score a
// conversation does not have leaves its cell empty.
func WriteCSV(w io.Writer, rows []Row) error {
	columns := Columns(rows)

	cw := csv.NewWriter(w)
	header := append([]string{"conversation_id"}, columns...)
	if err := cw.Write(header); err != nil {
		return errors.Internal(err)
	}

	record := make([]string, len(header))
	for _, row := range rows {
		record[0] = row.ConversationID
		for i, column := range columns {
			if value, ok := row.Values[column]; ok {
				record[i+1] = strconv.FormatFloat(value, 'g', -1, 64)
			} else {
				record[i+1] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Internal(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Internal(err)
	}
	return nil
}
