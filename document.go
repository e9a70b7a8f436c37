// Package csb provides the shared model for crowd-sourced bathymetry (CSB)
// submission documents: the convention tags, the property paths used to read
// identity information back out of a serialized document and the schema
// version dispatch that downstream packages key off.
package csb

import (
	"errors"

	"github.com/tidwall/gjson"
)

// SchemaVersion enumerates the metadata layouts a submission document can
// carry. Adding support for a future layout means adding a new value here and
// a matching decoder in the vessel package rather than growing a chain of
// nested field lookups.
type SchemaVersion int

const (
	// SchemaUnknown is assigned to documents whose layout matches no known convention.
	SchemaUnknown SchemaVersion = iota
	// SchemaCSB2 is the flat (V2) layout with a top-level properties.convention tag.
	SchemaCSB2
	// SchemaCSB3 is the (V3) layout that wraps vessel identity in a trustedNode block.
	SchemaCSB3
)

// ErrUnrecognizedConvention is returned when a document's schema version can
// not be mapped to a known identifier location.
var ErrUnrecognizedConvention = errors.New("unrecognized CSB metadata convention")

// ErrMissingIdentifier is returned when a document matches a known layout but
// the identifier field itself is absent.
var ErrMissingIdentifier = errors.New("no unique vessel ID in metadata")

func (v SchemaVersion) String() string {

	switch v {
	case SchemaCSB2:
		return CONVENTION_CSB2
	case SchemaCSB3:
		return CONVENTION_CSB3
	default:
		return "unknown"
	}
}

// DetectSchema determines the metadata layout of a serialized submission
// document. Dispatch is on layout alone; whether the convention tag inside
// that layout is recognized is left to the per-version decoders.
func DetectSchema(body []byte) SchemaVersion {

	if gjson.GetBytes(body, PATH_TRUSTED_NODE).Exists() {
		return SchemaCSB3
	}

	if gjson.GetBytes(body, PATH_CONVENTION).Exists() {
		return SchemaCSB2
	}

	return SchemaUnknown
}
