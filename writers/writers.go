// Package writers provides helpers for moving serialized submission
// documents through whosonfirst/go-reader and whosonfirst/go-writer
// instances, which is how the command-line tools talk to local directories
// and other document stores without caring which is which.
package writers

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/whosonfirst/go-ioutil"
	"github.com/whosonfirst/go-reader/v2"
	"github.com/whosonfirst/go-writer/v3"
)

// LoadDocument reads and returns the body of the document at 'path' using 'r'.
func LoadDocument(ctx context.Context, r reader.Reader, path string) ([]byte, error) {

	fh, err := r.Read(ctx, path)

	if err != nil {
		return nil, fmt.Errorf("Failed to open %s for reading, %w", path, err)
	}

	defer fh.Close()

	body, err := io.ReadAll(fh)

	if err != nil {
		return nil, fmt.Errorf("Failed to read %s, %w", path, err)
	}

	return body, nil
}

// WriteDocument writes 'body' to 'path' using 'wr'.
func WriteDocument(ctx context.Context, wr writer.Writer, path string, body []byte) error {

	br := bytes.NewReader(body)

	rsc, err := ioutil.NewReadSeekCloser(br)

	if err != nil {
		return fmt.Errorf("Failed to create ReadSeekCloser for %s, %w", path, err)
	}

	defer rsc.Close()

	_, err = wr.Write(ctx, path, rsc)

	if err != nil {
		return fmt.Errorf("Failed to write %s, %w", path, err)
	}

	return nil
}
