package build

import (
	"context"
	"flag"
	"fmt"

	"github.com/sfomuseum/go-flags/flagset"
)

type RunOptions struct {
	Verbose         bool
	RecordReaderURI string
	WriterURI       string
	ProviderID      string
	Organization    string
	Email           string
	Logger          string
	Timezone        string
	Paths           []string
}

func RunOptionsFromFlagSet(ctx context.Context, fs *flag.FlagSet) (*RunOptions, error) {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "CSB")

	if err != nil {
		return nil, fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	if provider_id == "" {
		return nil, fmt.Errorf("Missing required -provider flag")
	}

	opts := &RunOptions{
		Verbose:         verbose,
		RecordReaderURI: record_reader_uri,
		WriterURI:       writer_uri,
		ProviderID:      provider_id,
		Organization:    organization,
		Email:           email,
		Logger:          logger_name,
		Timezone:        timezone,
		Paths:           fs.Args(),
	}

	return opts, nil
}
