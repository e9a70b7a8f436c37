package build

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oceanmapping/go-csb/submission"
	"github.com/oceanmapping/go-csb/writers"
	"github.com/whosonfirst/go-reader/v2"
	"github.com/whosonfirst/go-writer/v3"
)

// Run executes the "build submission documents" application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "build submission documents" application with a `flag.FlagSet` instance defined by 'fs'.
func RunWithFlagSet(ctx context.Context, fs *flag.FlagSet) error {

	opts, err := RunOptionsFromFlagSet(ctx, fs)

	if err != nil {
		return err
	}

	return RunWithOptions(ctx, opts)
}

func RunWithOptions(ctx context.Context, opts *RunOptions) error {

	if opts.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}

	record_reader, err := reader.NewReader(ctx, opts.RecordReaderURI)

	if err != nil {
		return fmt.Errorf("Failed to create record reader, %w", err)
	}

	document_writer, err := writer.NewWriter(ctx, opts.WriterURI)

	if err != nil {
		return fmt.Errorf("Failed to create document writer, %w", err)
	}

	loc, err := time.LoadLocation(opts.Timezone)

	if err != nil {
		return fmt.Errorf("Failed to load time zone '%s', %w", opts.Timezone, err)
	}

	build_opts := &submission.BuildOptions{
		ProviderID:   opts.ProviderID,
		Organization: opts.Organization,
		Email:        opts.Email,
		Logger:       opts.Logger,
		Location:     loc,
	}

	var failed []error

	for _, path := range opts.Paths {

		logger := slog.Default()
		logger = logger.With("path", path)

		err := buildRecord(ctx, record_reader, document_writer, build_opts, path)

		if err != nil {
			// Failures are terminal for the record being processed but not
			// for the batch.
			logger.Error("Failed to build submission document", "error", err)
			failed = append(failed, fmt.Errorf("Failed to build submission document for %s, %w", path, err))
			continue
		}
	}

	return errors.Join(failed...)
}

// buildRecord converts the timestamped depth record at 'path' into a
// submission document and writes it alongside the record with a .geojson
// extension.
func buildRecord(ctx context.Context, r reader.Reader, wr writer.Writer, build_opts *submission.BuildOptions, path string) error {

	body, err := writers.LoadDocument(ctx, r, path)

	if err != nil {
		return fmt.Errorf("Failed to load record, %w", err)
	}

	var rec *submission.Record

	err = json.Unmarshal(body, &rec)

	if err != nil {
		return fmt.Errorf("Failed to decode record, %w", err)
	}

	doc, err := submission.Build(rec, build_opts)

	if err != nil {
		return fmt.Errorf("Failed to build document, %w", err)
	}

	enc_doc, err := json.Marshal(doc)

	if err != nil {
		return fmt.Errorf("Failed to marshal document, %w", err)
	}

	doc_path := fmt.Sprintf("%s.geojson", strings.TrimSuffix(path, ".json"))

	err = writers.WriteDocument(ctx, wr, doc_path, enc_doc)

	if err != nil {
		return fmt.Errorf("Failed to write document, %w", err)
	}

	slog.Info("Wrote submission document", "path", path, "document", doc_path, "features", len(doc.Features))
	return nil
}
