package upload

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var mode string
var verbose bool

var config_path string
var reader_uri string

var source_id string
var provider_id string
var auth_uri string

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("upload")

	fs.StringVar(&mode, "mode", "cli", "Valid options are: cli, lambda.")
	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.StringVar(&config_path, "config", "", "The path to a JSON configuration file defining provider_id and upload_point.")

	fs.StringVar(&reader_uri, "reader-uri", "fs:///", "A valid whosonfirst/go-reader URI for reading submission documents.")

	fs.StringVar(&source_id, "source-id", "", "An explicit source ID for the transmission. If empty the unique vessel ID is resolved from the document's metadata.")

	fs.StringVar(&provider_id, "provider", "", "The provider namespace assigned by DCDB. Overridden by provider_id in the configuration file when present.")

	fs.StringVar(&auth_uri, "auth-uri", "", "A valid gocloud.dev/runtimevar URI resolving to the provider authorization token. Overrides provider_auth_uri in the configuration file.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Upload GeoJSON CSB submission documents to DCDB for archival.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] path(N) path(N)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
