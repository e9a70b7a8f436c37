// Package config loads the installation configuration required to upload CSB
// submission documents: the DCDB provider identity and the upload endpoint.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMissingConfiguration is returned when a required configuration key is
// absent. It is wrapped with the name of the missing key.
var ErrMissingConfiguration = errors.New("missing required configuration")

// Config describes a DCDB upload installation.
type Config struct {
	// ProviderID is the provider namespace assigned by DCDB.
	ProviderID string `json:"provider_id"`
	// UploadPoint is the URL documents are transmitted to.
	UploadPoint string `json:"upload_point"`
	// ProviderAuthURI is an optional gocloud.dev/runtimevar URI resolving to
	// the provider authorization token.
	ProviderAuthURI string `json:"provider_auth_uri,omitempty"`
}

// Load reads and validates a JSON configuration file from 'path'.
func Load(path string) (*Config, error) {

	r, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("Failed to open config file %s, %w", path, err)
	}

	defer r.Close()

	return FromReader(r)
}

// FromReader decodes and validates a JSON configuration document from 'r'.
func FromReader(r io.Reader) (*Config, error) {

	var cfg *Config

	dec := json.NewDecoder(r)
	err := dec.Decode(&cfg)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode config, %w", err)
	}

	if cfg.ProviderID == "" {
		return nil, fmt.Errorf("Config does not define provider_id, %w", ErrMissingConfiguration)
	}

	if cfg.UploadPoint == "" {
		return nil, fmt.Errorf("Config does not define upload_point, %w", ErrMissingConfiguration)
	}

	return cfg, nil
}
