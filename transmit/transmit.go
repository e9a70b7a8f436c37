// Package transmit sends serialized CSB submission documents to a DCDB
// upload endpoint.
package transmit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Options defines runtime options for transmitting a single document.
type Options struct {
	// UploadPoint is the URL the document is posted to.
	UploadPoint string
	// SourceID is the unique vessel ID the transmission is labeled with.
	SourceID string
	// ProviderID is the provider namespace assigned by DCDB. A source ID
	// that does not already contain it is prefixed with "{ProviderID}-"
	// before upload.
	ProviderID string
	// AuthToken is the provider authorization token issued by DCDB.
	AuthToken string
	// Client is the HTTP client used for the request; nil means
	// http.DefaultClient.
	Client *http.Client
}

// Receipt records the endpoint's response to a successful transmission.
type Receipt struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// Transmit posts 'body' to the upload point as a multipart upload carrying
// the x-auth-token header. The uploaded filename embeds the source ID and a
// fresh UUID so that repeated submissions from the same vessel never collide
// at the archive.
func Transmit(ctx context.Context, opts *Options, body []byte) (*Receipt, error) {

	source_id := opts.SourceID

	if opts.ProviderID != "" && !strings.Contains(source_id, opts.ProviderID) {
		source_id = fmt.Sprintf("%s-%s", opts.ProviderID, source_id)
	}

	filename := fmt.Sprintf("%s-%s.geojson", source_id, uuid.New().String())

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)

	if err != nil {
		return nil, fmt.Errorf("Failed to create multipart form file, %w", err)
	}

	_, err = part.Write(body)

	if err != nil {
		return nil, fmt.Errorf("Failed to write document to multipart form, %w", err)
	}

	err = mw.Close()

	if err != nil {
		return nil, fmt.Errorf("Failed to finalize multipart form, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.UploadPoint, &buf)

	if err != nil {
		return nil, fmt.Errorf("Failed to create upload request, %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("x-auth-token", opts.AuthToken)

	cl := opts.Client

	if cl == nil {
		cl = http.DefaultClient
	}

	rsp, err := cl.Do(req)

	if err != nil {
		return nil, fmt.Errorf("Failed to transmit document to %s, %w", opts.UploadPoint, err)
	}

	defer rsp.Body.Close()

	rsp_body, err := io.ReadAll(rsp.Body)

	if err != nil {
		return nil, fmt.Errorf("Failed to read upload response, %w", err)
	}

	if rsp.StatusCode < http.StatusOK || rsp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("Upload point returned %s, %s", rsp.Status, string(rsp_body))
	}

	receipt := &Receipt{
		StatusCode: rsp.StatusCode,
		Body:       string(rsp_body),
	}

	return receipt, nil
}
