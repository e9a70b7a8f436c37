package upload

import (
	"context"
	"flag"
	"fmt"

	"github.com/sfomuseum/go-flags/flagset"
)

type RunOptions struct {
	Mode       string
	Verbose    bool
	ConfigPath string
	ReaderURI  string
	SourceID   string
	ProviderID string
	AuthURI    string
	Paths      []string
}

func RunOptionsFromFlagSet(ctx context.Context, fs *flag.FlagSet) (*RunOptions, error) {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "CSB")

	if err != nil {
		return nil, fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	if config_path == "" {
		return nil, fmt.Errorf("Missing required -config flag")
	}

	opts := &RunOptions{
		Mode:       mode,
		Verbose:    verbose,
		ConfigPath: config_path,
		ReaderURI:  reader_uri,
		SourceID:   source_id,
		ProviderID: provider_id,
		AuthURI:    auth_uri,
		Paths:      fs.Args(),
	}

	return opts, nil
}
