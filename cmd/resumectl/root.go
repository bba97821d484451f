package main

import (
	"fmt"
	"os"

	"github.com/resumeparser/resume-parser-backend/pkg/config"
	"github.com/resumeparser/resume-parser-backend/pkg/i18n"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
	"github.com/spf13/cobra"
)

const (
	app = "resumectl"
)

var (
	// Used for flags.
	environment string
	locale      string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "resumectl parses PDF, DOC and DOCX resumes into structured JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s: %v\n", app, err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&environment, "env", config.GetEnvironment(), "environment used for log formatting (development prints human readable logs)")
	rootCmd.PersistentFlags().StringVar(&locale, "lang", i18n.DefaultLocale, "language of error messages")
}

// newLogger writes to stderr so stdout only carries results
func newLogger() *logger.Logger {
	return logger.NewWithWriter(app, environment, os.Stderr)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load("resume-service")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
