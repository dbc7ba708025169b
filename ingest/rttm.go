package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kbukum/convodyn/conversation"
	"github.com/kbukum/convodyn/errors"
)

// rttmFields is the field count of a SPEAKER line in the NIST RTTM format:
// type, file, channel, onset, duration, ortho, stype, name, conf, slat.
const rttmFields = 10

// ReadRTTM decodes speaker intervals from an RTTM rich-transcription file.
// Only SPEAKER lines contribute; other line types and ";"-comments are
// skipped. Onset/duration pairs become start/end intervals.
func ReadRTTM(r io.Reader) ([]conversation.Interval, error) {
	var intervals []conversation.Interval

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] != "SPEAKER" {
			continue
		}
		if len(fields) < rttmFields-2 {
			return nil, errors.InvalidFormat(
				fmt.Sprintf("line %d", lineNo),
				"SPEAKER <file> <chnl> <onset> <dur> <ortho> <stype> <name> <conf> [<slat>]",
			)
		}

		onset, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, errors.InvalidFormat(fmt.Sprintf("line %d onset", lineNo), "number")
		}
		duration, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, errors.InvalidFormat(fmt.Sprintf("line %d duration", lineNo), "number")
		}

		intervals = append(intervals, conversation.Interval{
			Speaker: fields[7],
			Start:   onset,
			End:     onset + duration,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Internal(err)
	}

	return intervals, nil
}
