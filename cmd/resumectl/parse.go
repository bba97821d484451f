package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/internal/resume/extractor"
	"github.com/resumeparser/resume-parser-backend/internal/resume/ner"
	"github.com/resumeparser/resume-parser-backend/internal/resume/service"
	"github.com/resumeparser/resume-parser-backend/pkg/config"
	"github.com/resumeparser/resume-parser-backend/pkg/errors"
	"github.com/resumeparser/resume-parser-backend/pkg/i18n"
	"github.com/spf13/cobra"
)

var extensionTypes = map[string]string{
	".pdf":  domain.MIMETypePDF,
	".doc":  domain.MIMETypeDOC,
	".docx": domain.MIMETypeDOCX,
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Parse one or more resumes and print the result as JSON",
	Long: `Parse one or more resumes and print the result as JSON.

A single file prints its record. Several files print one result per file in
argument order; a file that fails does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("preserve-lines", false, "keep line breaks during normalization")
	parseCmd.Flags().Int("workers", 0, "number of files parsed concurrently (default from config)")
	parseCmd.Flags().String("ner-url", "", "base URL of an entity recognition service")
	parseCmd.Flags().Bool("compact", false, "print JSON on a single line")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyParseFlags(cmd, cfg)

	if len(args) > cfg.Upload.MaxBatchFiles {
		return errors.TooManyFiles(cfg.Upload.MaxBatchFiles)
	}

	log := newLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = i18n.WithLocale(ctx, i18n.ParseAcceptLanguage(locale))

	recognizer := ner.Resolve(ctx, cfg.NER.URL, cfg.NER.Timeout, log)
	svc := service.NewService(extractor.NewDefaultRegistry(log), recognizer, nil, cfg.Parser, log)

	compact, _ := cmd.Flags().GetBool("compact")
	out := json.NewEncoder(cmd.OutOrStdout())
	if !compact {
		out.SetIndent("", "  ")
	}

	if len(args) == 1 {
		doc, appErr := readDocument(args[0], cfg.Upload.MaxFileSize)
		if appErr != nil {
			return fmt.Errorf("%s", appErr.Localize(ctx))
		}
		record, err := svc.Parse(ctx, doc)
		if err != nil {
			return fmt.Errorf("%s", service.ClassifyError(err, doc).Localize(ctx))
		}
		return out.Encode(record)
	}

	items := make([]domain.BatchItem, len(args))
	docs := make([]domain.Document, 0, len(args))
	slots := make([]int, 0, len(args))
	for i, path := range args {
		doc, appErr := readDocument(path, cfg.Upload.MaxFileSize)
		if appErr != nil {
			items[i] = service.ErrorItem(ctx, filepath.Base(path), appErr)
			continue
		}
		docs = append(docs, doc)
		slots = append(slots, i)
	}
	for j, item := range svc.ParseBatch(ctx, docs) {
		items[slots[j]] = item
	}

	return out.Encode(items)
}

func applyParseFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("preserve-lines") {
		cfg.Parser.PreserveLineBreaks, _ = flags.GetBool("preserve-lines")
	}
	if flags.Changed("workers") {
		cfg.Parser.BatchWorkers, _ = flags.GetInt("workers")
	}
	if flags.Changed("ner-url") {
		cfg.NER.URL, _ = flags.GetString("ner-url")
	}
}

// readDocument loads a file and works out its type from the extension,
// falling back to content sniffing for unknown extensions.
func readDocument(path string, maxSize int64) (domain.Document, *errors.AppError) {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return domain.Document{}, errors.BadRequest(err.Error())
	}
	if info.Size() > maxSize {
		return domain.Document{}, errors.FileTooLarge(maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, errors.BadRequest(err.Error())
	}

	mimeType := fileType(name, data)
	if !domain.IsSupportedMIMEType(mimeType) {
		return domain.Document{}, errors.UnsupportedFormat(mimeType)
	}

	return domain.Document{Filename: name, MIMEType: mimeType, Data: data}, nil
}

func fileType(name string, data []byte) string {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if domain.IsSupportedMIMEType(m.String()) {
			return m.String()
		}
	}
	t, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return t
}
