package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/convodyn/analyzer"
	"github.com/kbukum/convodyn/conversation"
	"github.com/kbukum/convodyn/ingest"
	"github.com/kbukum/convodyn/logger"
	"github.com/kbukum/convodyn/report"
)

type analyzeFlags struct {
	output              string
	outputFormat        string
	mergeGapTolerance   float64
	metricNames         []string
	dropShortestSpeaker bool
	workers             int
}

func newAnalyzeCmd() *cobra.Command {
	flags := analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze diarized conversations from files or stdin",
		Long: `Analyze reads diarization output (JSON segments or RTTM, decided by
file extension) and writes one flat feature row per conversation.

With no file arguments, a single JSON document is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "-", "output file (- for stdout)")
	cmd.Flags().StringVar(&flags.outputFormat, "output-format", "jsonl", "output format: jsonl or csv")
	cmd.Flags().Float64Var(&flags.mergeGapTolerance, "merge-gap-tolerance", 0, "max same-speaker gap in seconds to merge into one turn")
	cmd.Flags().StringSliceVar(&flags.metricNames, "metrics", nil, "metrics to compute (default: speaking_time,turn_length,pauses,adaptability)")
	cmd.Flags().BoolVar(&flags.dropShortestSpeaker, "drop-shortest-speaker", false, "remove the least-speaking speaker when more than two are present")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "batch concurrency (default: CPU count)")

	return cmd
}

func runAnalyze(ctx context.Context, flags analyzeFlags, args []string) error {
	log := logger.NewFromEnv("convodyn")
	logger.SetGlobalLogger(log)

	a, err := analyzer.New(analyzer.Config{
		MergeGapTolerance:   flags.mergeGapTolerance,
		Metrics:             flags.metricNames,
		DropShortestSpeaker: flags.dropShortestSpeaker,
		Workers:             flags.workers,
	}, nil, log)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}

	items := a.AnalyzeBatch(ctx, inputs)

	records := make([]*analyzer.Record, 0, len(items))
	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
			log.Warn("conversation skipped", logger.Fields(
				logger.FieldConversationID, item.ID,
				logger.FieldError, item.Err.Error(),
			))
			continue
		}
		records = append(records, item.Record)
	}

	if err := writeRows(flags, report.FlattenAll(records)); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversations failed", failed, len(items))
	}
	return nil
}

// collectInputs reads every named file, or stdin when no files are given.
// The conversation id defaults to the file base name without extension.
func collectInputs(args []string) ([]analyzer.Input, error) {
	if len(args) == 0 {
		doc, err := ingest.ReadJSON(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []analyzer.Input{{ID: doc.ConversationID, Intervals: doc.Intervals()}}, nil
	}

	inputs := make([]analyzer.Input, 0, len(args))
	for _, path := range args {
		intervals, id, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		inputs = append(inputs, analyzer.Input{ID: id, Intervals: intervals})
	}
	return inputs, nil
}

func readFile(path string) ([]conversation.Interval, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	if strings.EqualFold(filepath.Ext(path), ".rttm") {
		intervals, err := ingest.ReadRTTM(f)
		return intervals, id, err
	}

	doc, err := ingest.ReadJSON(f)
	if err != nil {
		return nil, "", err
	}
	if doc.ConversationID != "" {
		id = doc.ConversationID
	}
	return doc.Intervals(), id, nil
}

func writeRows(flags analyzeFlags, rows []report.Row) error {
	var out io.Writer = os.Stdout
	if flags.output != "-" && flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(flags.outputFormat) {
	case "jsonl":
		return report.WriteJSONL(out, rows)
	case "csv":
		return report.WriteCSV(out, rows)
	default:
		return fmt.Errorf("unknown output format %q (want jsonl or csv)", flags.outputFormat)
	}
}
