package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oceanmapping/go-csb/transmit"
	"github.com/oceanmapping/go-csb/vessel"
	"github.com/oceanmapping/go-csb/writers"
	"github.com/whosonfirst/go-reader/v2"
)

func runCommandLine(ctx context.Context, opts *RunOptions, transmit_opts *transmit.Options, r reader.Reader) error {

	var failed []error

	for _, path := range opts.Paths {

		logger := slog.Default()
		logger = logger.With("path", path)

		err := uploadDocument(ctx, opts.SourceID, transmit_opts, r, path)

		if err != nil {
			// Failures are terminal for the document being processed but not
			// for the batch.
			logger.Error("Failed to upload document", "error", err)
			failed = append(failed, fmt.Errorf("Failed to upload %s, %w", path, err))
			continue
		}

		logger.Info("Transmitted document")
	}

	return errors.Join(failed...)
}

// uploadDocument transmits a single submission document. The source ID for
// the transmission is 'source_id' when non-empty, bypassing resolution,
// otherwise the unique vessel ID read from the document's metadata.
func uploadDocument(ctx context.Context, source_id string, transmit_opts *transmit.Options, r reader.Reader, path string) error {

	body, err := writers.LoadDocument(ctx, r, path)

	if err != nil {
		return fmt.Errorf("Failed to load document, %w", err)
	}

	if source_id == "" {

		source_id, err = vessel.ResolveID(body)

		if err != nil {
			return fmt.Errorf("Failed to resolve unique vessel ID, %w", err)
		}
	}

	doc_opts := &transmit.Options{
		UploadPoint: transmit_opts.UploadPoint,
		ProviderID:  transmit_opts.ProviderID,
		AuthToken:   transmit_opts.AuthToken,
		SourceID:    source_id,
		Client:      transmit_opts.Client,
	}

	receipt, err := transmit.Transmit(ctx, doc_opts, body)

	if err != nil {
		return fmt.Errorf("Failed to transmit document, %w", err)
	}

	slog.Debug("Upload point accepted document", "status", receipt.StatusCode, "source_id", source_id)
	return nil
}
