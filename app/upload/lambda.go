package upload

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/oceanmapping/go-csb/transmit"
	"github.com/whosonfirst/go-reader/v2"
)

func runLambda(ctx context.Context, opts *RunOptions, transmit_opts *transmit.Options, r reader.Reader) error {

	type UploadEvent struct {
		Location string `json:"location"`
		SourceID string `json:"source_id,omitempty"`
	}

	handler := func(ctx context.Context, ev UploadEvent) error {

		source_id := ev.SourceID

		if source_id == "" {
			source_id = opts.SourceID
		}

		err := uploadDocument(ctx, source_id, transmit_opts, r, ev.Location)

		if err != nil {
			return fmt.Errorf("Failed to upload %s, %w", ev.Location, err)
		}

		return nil
	}

	lambda.Start(handler)
	return nil
}
