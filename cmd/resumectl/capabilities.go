package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/resumeparser/resume-parser-backend/internal/resume/extractor"
	"github.com/spf13/cobra"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List supported formats and whether their decoders are installed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry := extractor.NewDefaultRegistry(newLogger())
		return printCapabilities(cmd, registry.Capabilities())
	},
}

func init() {
	rootCmd.AddCommand(capabilitiesCmd)
}

func printCapabilities(cmd *cobra.Command, caps []extractor.Capability) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MIME TYPE\tDECODER\tSTATUS")
	for _, c := range caps {
		status := "available"
		decoder := c.Decoder
		if !c.Available {
			status = "missing " + c.Missing
			decoder = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.MIMEType, decoder, status)
	}
	return w.Flush()
}
