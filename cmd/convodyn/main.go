// Command convodyn analyzes speaker-diarized conversations and reports
// macro conversational-dynamics features.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/convodyn/version"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           "convodyn",
		Short:         "Conversational-dynamics feature extraction from diarized conversations",
		Version:       version.GetShortVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
		Long: `convodyn turns speaker-diarized conversation intervals into macro
conversational-dynamics features: speaking-time shares, turn-length
statistics, pause fractions, and per-pair adaptability scores.

Input is diarization output (JSON segments or RTTM); output is one flat
feature row per conversation, as JSONL or CSV.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: searched in standard locations)")
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
