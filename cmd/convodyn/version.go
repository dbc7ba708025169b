package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/convodyn/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print detailed version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetFullVersion())
		},
	}
}
