// Package vessel resolves the unique vessel identifier from a serialized CSB
// submission document, dispatching on the document's metadata layout.
package vessel

import (
	"fmt"
	"log/slog"

	"github.com/oceanmapping/go-csb"
	"github.com/tidwall/gjson"
)

// ResolveID determines the unique vessel ID recorded in 'body', a serialized
// submission document. The identifier moved between metadata revisions so
// resolution dispatches on the detected schema version with one decoder per
// layout. ResolveID fails with csb.ErrUnrecognizedConvention or
// csb.ErrMissingIdentifier rather than guessing.
func ResolveID(body []byte) (string, error) {

	switch csb.DetectSchema(body) {
	case csb.SchemaCSB3:
		return resolveTrustedNode(body)
	case csb.SchemaCSB2:
		return resolvePlatform(body)
	default:
		return "", fmt.Errorf("Failed to match document against any known metadata layout, %w", csb.ErrUnrecognizedConvention)
	}
}

// resolveTrustedNode reads the vessel ID from a V3 trustedNode block. An
// unrecognized convention tag is non-fatal as long as the identifier field is
// still where V3 put it; documents produced by a future revision often are.
func resolveTrustedNode(body []byte) (string, error) {

	convention := gjson.GetBytes(body, csb.PATH_TRUSTED_NODE_CONVENTION).String()

	if convention != csb.CONVENTION_CSB3 {
		slog.Warn("Unrecognized trustedNode convention, attempting to read vessel ID anyway", "convention", convention)
	}

	id_rsp := gjson.GetBytes(body, csb.PATH_TRUSTED_NODE_VESSEL_ID)

	if !id_rsp.Exists() {
		return "", fmt.Errorf("Failed to find a unique vessel ID in trustedNode block, %w", csb.ErrMissingIdentifier)
	}

	return id_rsp.String(), nil
}

// resolvePlatform reads the vessel ID from a flat V2 platform block. There
// was only ever one V2 convention tag so anything else is refused outright.
func resolvePlatform(body []byte) (string, error) {

	convention := gjson.GetBytes(body, csb.PATH_CONVENTION).String()

	if convention != csb.CONVENTION_CSB2 {
		return "", fmt.Errorf("Unsupported convention '%s', %w", convention, csb.ErrUnrecognizedConvention)
	}

	id_rsp := gjson.GetBytes(body, csb.PATH_PLATFORM_UNIQUE_ID)

	if !id_rsp.Exists() {
		return "", fmt.Errorf("Failed to find a unique vessel ID in platform block, %w", csb.ErrMissingIdentifier)
	}

	return id_rsp.String(), nil
}
