package upload

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oceanmapping/go-csb/config"
	"github.com/oceanmapping/go-csb/transmit"
	"github.com/whosonfirst/go-reader/v2"
	"gocloud.dev/runtimevar"
)

// Run executes the "upload submission documents" application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "upload submission documents" application with a `flag.FlagSet` instance defined by 'fs'.
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

	cfg, err := config.Load(opts.ConfigPath)

	if err != nil {
		return fmt.Errorf("Failed to load configuration, %w", err)
	}

	provider_id := cfg.ProviderID

	if provider_id == "" {
		provider_id = opts.ProviderID
	}

	auth_uri := opts.AuthURI

	if auth_uri == "" {
		auth_uri = cfg.ProviderAuthURI
	}

	if provider_id == "" || auth_uri == "" {
		return fmt.Errorf("You must specify a provider ID and an authorization token URI")
	}

	auth_token, err := resolveAuthToken(ctx, auth_uri)

	if err != nil {
		return fmt.Errorf("Failed to resolve provider authorization token, %w", err)
	}

	document_reader, err := reader.NewReader(ctx, opts.ReaderURI)

	if err != nil {
		return fmt.Errorf("Failed to create document reader, %w", err)
	}

	transmit_opts := &transmit.Options{
		UploadPoint: cfg.UploadPoint,
		ProviderID:  provider_id,
		AuthToken:   auth_token,
	}

	switch opts.Mode {
	case "cli":
		return runCommandLine(ctx, opts, transmit_opts, document_reader)
	case "lambda":
		return runLambda(ctx, opts, transmit_opts, document_reader)
	default:
		return fmt.Errorf("Invalid or unsupported mode")
	}
}

// resolveAuthToken dereferences a gocloud.dev/runtimevar URI to the provider
// authorization token it holds.
func resolveAuthToken(ctx context.Context, uri string) (string, error) {

	v, err := runtimevar.OpenVariable(ctx, uri)

	if err != nil {
		return "", fmt.Errorf("Failed to open runtimevar for '%s', %w", uri, err)
	}

	defer v.Close()

	snapshot, err := v.Latest(ctx)

	if err != nil {
		return "", fmt.Errorf("Failed to retrieve latest value for '%s', %w", uri, err)
	}

	var token string

	switch value := snapshot.Value.(type) {
	case string:
		token = value
	case []byte:
		token = string(value)
	default:
		return "", fmt.Errorf("Unexpected value of type %T for '%s'", value, uri)
	}

	return strings.TrimSpace(token), nil
}
