package config

import (
	"errors"
	"strings"
	"testing"
)

func TestFromReader(t *testing.T) {

	body := `{"provider_id": "US", "upload_point": "https://ingest.example.org/csb", "provider_auth_uri": "file:///etc/csb/token?decoder=string"}`

	cfg, err := FromReader(strings.NewReader(body))

	if err != nil {
		t.Fatalf("Failed to load config, %v", err)
	}

	if cfg.ProviderID != "US" {
		t.Fatalf("Unexpected provider_id '%s'", cfg.ProviderID)
	}

	if cfg.UploadPoint != "https://ingest.example.org/csb" {
		t.Fatalf("Unexpected upload_point '%s'", cfg.UploadPoint)
	}
}

func TestFromReaderMissingProviderID(t *testing.T) {

	body := `{"upload_point": "https://ingest.example.org/csb"}`

	_, err := FromReader(strings.NewReader(body))

	if !errors.Is(err, ErrMissingConfiguration) {
		t.Fatalf("Expected ErrMissingConfiguration, but got %v", err)
	}
}

func TestFromReaderMissingUploadPoint(t *testing.T) {

	body := `{"provider_id": "US"}`

	_, err := FromReader(strings.NewReader(body))

	if !errors.Is(err, ErrMissingConfiguration) {
		t.Fatalf("Expected ErrMissingConfiguration, but got %v", err)
	}
}

func TestFromReaderInvalidJSON(t *testing.T) {

	_, err := FromReader(strings.NewReader(`{"provider_id": `))

	if err == nil {
		t.Fatalf("Expected decoding to fail")
	}
}
