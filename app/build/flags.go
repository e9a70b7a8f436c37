package build

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var verbose bool

var record_reader_uri string
var writer_uri string

var provider_id string
var organization string
var email string
var logger_name string
var timezone string

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("build")

	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.StringVar(&record_reader_uri, "record-reader-uri", "fs:///", "A valid whosonfirst/go-reader URI for reading timestamped depth records.")

	fs.StringVar(&writer_uri, "writer-uri", "fs:///", "A valid whosonfirst/go-writer URI for writing submission documents.")

	fs.StringVar(&provider_id, "provider", "", "The provider namespace assigned by DCDB.")

	fs.StringVar(&organization, "organization", "CCOM/JHC-UNH", "The name of the institution operating the logger, recorded in the document's contact block.")

	fs.StringVar(&email, "email", "wibl@ccom.unh.edu", "The contact address for the operating institution.")

	fs.StringVar(&logger_name, "logger", "WIBL", "The name of the logger product that captured the observations.")

	fs.StringVar(&timezone, "timezone", "UTC", "An IANA time zone name used to render observation timestamps.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Build GeoJSON CSB submission documents from timestamped depth records.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] path(N) path(N)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
