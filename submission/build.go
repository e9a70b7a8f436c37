// Package submission converts timestamped depth records into GeoJSON CSB
// submission documents suitable for archival with DCDB.
package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/oceanmapping/go-csb"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrMalformedMetadata is returned when a caller-supplied platform metadata
// blob is not valid JSON.
var ErrMalformedMetadata = errors.New("platform metadata is not valid JSON")

// Algorithm describes a processing algorithm applied to a record upstream of
// the builder.
type Algorithm struct {
	Name       string `json:"name"`
	Parameters string `json:"params"`
}

// Record is a timestamped depth record produced by the upstream
// timestamping pipeline. The four observation slices are parallel: index i
// across all four describes one observation.
type Record struct {
	// Timestamps are epoch timestamps, in seconds, for each observation.
	Timestamps []float64 `json:"t"`
	// Depths are observed depths, in meters, for each observation.
	Depths []float64 `json:"z"`
	// Latitudes are WGS84 latitudes, in degrees, for each observation.
	Latitudes []float64 `json:"lat"`
	// Longitudes are WGS84 longitudes, in degrees, for each observation.
	Longitudes []float64 `json:"lon"`
	// Logger is the logger-assigned unique name for the platform.
	Logger string `json:"logger"`
	// ShipName is the human-readable display name for the platform.
	ShipName string `json:"shipname"`
	// LoggerVersion is the firmware/software version of the logger that
	// captured the observations.
	LoggerVersion string `json:"loggerversion"`
	// Metadata is an optional caller-supplied platform block that, when
	// present, replaces the default platform block in full.
	Metadata json.RawMessage `json:"metadata,omitempty"`
	// Algorithms lists the processing algorithms applied to the record.
	Algorithms []Algorithm `json:"algorithms,omitempty"`
	// Lineage is an optional processing lineage carried through to the
	// submission document verbatim.
	Lineage json.RawMessage `json:"lineage,omitempty"`
}

// BuildOptions defines runtime options for building a submission document.
type BuildOptions struct {
	// ProviderID is the DCDB-assigned namespace for the data provider. Every
	// submission's unique vessel ID must contain it as a substring.
	ProviderID string
	// Organization names the institution operating the logger, recorded in
	// the document's contact block.
	Organization string
	// Email is the contact address for the operating institution.
	Email string
	// Logger names the logger product that captured the observations.
	Logger string
	// Location is the time zone used to render observation timestamps. A nil
	// Location means UTC.
	Location *time.Location
}

type platformBlock struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	UniqueID string `json:"uniqueID"`
	IDType   string `json:"IDType"`
	IDNumber string `json:"IDNumber"`
}

type contactPoint struct {
	OrgName       string `json:"orgName"`
	Email         string `json:"email"`
	Logger        string `json:"logger"`
	LoggerVersion string `json:"loggerVersion"`
}

// Build converts 'rec' into a GeoJSON CSB submission document. The result is
// a feature collection with one point feature per observation, in input
// order, and the CSB 2.0 metadata block carried in the collection's extra
// members. Build performs no I/O and does not modify 'rec'.
func Build(rec *Record, opts *BuildOptions) (*geojson.FeatureCollection, error) {

	count := len(rec.Depths)

	if len(rec.Timestamps) != count || len(rec.Latitudes) != count || len(rec.Longitudes) != count {
		return nil, fmt.Errorf("Observation sequences are not parallel: %d depths, %d timestamps, %d latitudes, %d longitudes",
			count, len(rec.Timestamps), len(rec.Latitudes), len(rec.Longitudes))
	}

	loc := opts.Location

	if loc == nil {
		loc = time.UTC
	}

	fc := geojson.NewFeatureCollection()

	for i := 0; i < count; i++ {

		f := geojson.NewFeature(orb.Point{rec.Longitudes[i], rec.Latitudes[i]})

		f.Properties = geojson.Properties{
			"depth": rec.Depths[i],
			"time":  iso8601(rec.Timestamps[i], loc),
		}

		fc.Append(f)
	}

	platform, err := platformJSON(rec)

	if err != nil {
		return nil, err
	}

	platform, err = namespaceUniqueID(platform, opts.ProviderID)

	if err != nil {
		return nil, fmt.Errorf("Failed to namespace unique vessel ID, %w", err)
	}

	contact := contactPoint{
		OrgName:       opts.Organization,
		Email:         opts.Email,
		Logger:        opts.Logger,
		LoggerVersion: rec.LoggerVersion,
	}

	props := geojson.Properties{
		"convention":           csb.CONVENTION_CSB2,
		"platform":             json.RawMessage(platform),
		"providerContactPoint": contact,
		"depthUnits":           "meters",
		"timeUnits":            "ISO 8601",
	}

	if len(rec.Algorithms) > 0 {
		props["algorithms"] = rec.Algorithms
	}

	lineage := json.RawMessage(`[]`)

	if rec.Lineage != nil {
		lineage = rec.Lineage
	}

	fc.ExtraMembers = geojson.Properties{
		"crs": map[string]interface{}{
			"type": "name",
			"properties": map[string]interface{}{
				"name": csb.CRS_NAME,
			},
		},
		"properties": props,
		"lineage":    lineage,
	}

	return fc, nil
}

// platformJSON returns the serialized platform block for 'rec': the
// caller-supplied metadata blob verbatim when present, otherwise a default
// block derived from the logger identity.
func platformJSON(rec *Record) ([]byte, error) {

	if rec.Metadata != nil {

		if !gjson.ValidBytes(rec.Metadata) {
			return nil, fmt.Errorf("Failed to parse metadata for logger %s, %w", rec.Logger, ErrMalformedMetadata)
		}

		return rec.Metadata, nil
	}

	name := rec.ShipName

	if name == "" {
		name = rec.Logger
	}

	platform := platformBlock{
		Type:     "Ship",
		Name:     name,
		UniqueID: rec.Logger,
		IDType:   csb.IDTYPE_LOGGER_NAME,
		IDNumber: rec.Logger,
	}

	return json.Marshal(platform)
}

// namespaceUniqueID enforces the provider-namespace rule on a finalized
// platform block: a uniqueID that does not already contain 'provider_id' as
// a substring is rewritten to "{provider_id}-{uniqueID}". Replacement
// metadata is subject to the same rule as the default block.
func namespaceUniqueID(platform []byte, provider_id string) ([]byte, error) {

	id_rsp := gjson.GetBytes(platform, "uniqueID")

	if !id_rsp.Exists() {
		return platform, nil
	}

	unique_id := id_rsp.String()

	if strings.Contains(unique_id, provider_id) {
		return platform, nil
	}

	return sjson.SetBytes(platform, "uniqueID", fmt.Sprintf("%s-%s", provider_id, unique_id))
}

// iso8601 renders an epoch timestamp (seconds, with fractional part) as an
// ISO-8601 string with millisecond precision in 'loc'.
func iso8601(t float64, loc *time.Location) string {

	sec, frac := math.Modf(t)
	ts := time.Unix(int64(sec), int64(math.Round(frac*1e9)))

	return ts.In(loc).Format("2006-01-02T15:04:05.000Z07:00")
}
