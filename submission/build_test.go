package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/tidwall/gjson"
)

func testRecord() *Record {

	return &Record{
		Timestamps:    []float64{1609459200.0, 1609459201.5, 1609459203.0},
		Depths:        []float64{10.5, 11.0, 11.25},
		Latitudes:     []float64{43.075, 43.076, 43.077},
		Longitudes:    []float64{-70.741, -70.742, -70.743},
		Logger:        "42",
		ShipName:      "RV Example",
		LoggerVersion: "1.2.1",
	}
}

func buildAndMarshal(t *testing.T, rec *Record, opts *BuildOptions) []byte {

	doc, err := Build(rec, opts)

	if err != nil {
		t.Fatalf("Failed to build submission document, %v", err)
	}

	body, err := json.Marshal(doc)

	if err != nil {
		t.Fatalf("Failed to marshal submission document, %v", err)
	}

	return body
}

func TestBuildOrderPreservation(t *testing.T) {

	rec := testRecord()
	opts := &BuildOptions{ProviderID: "US"}

	body := buildAndMarshal(t, rec, opts)

	features := gjson.GetBytes(body, "features")

	if int(features.Get("#").Int()) != 3 {
		t.Fatalf("Expected 3 features, but got %d", int(features.Get("#").Int()))
	}

	for i, lon := range rec.Longitudes {

		coords := gjson.GetBytes(body, fmt.Sprintf("features.%d.geometry.coordinates", i))

		if coords.Get("0").Float() != lon {
			t.Fatalf("Feature %d has longitude %f, expected %f", i, coords.Get("0").Float(), lon)
		}

		if coords.Get("1").Float() != rec.Latitudes[i] {
			t.Fatalf("Feature %d has latitude %f, expected %f", i, coords.Get("1").Float(), rec.Latitudes[i])
		}

		depth := gjson.GetBytes(body, fmt.Sprintf("features.%d.properties.depth", i))

		if depth.Float() != rec.Depths[i] {
			t.Fatalf("Feature %d has depth %f, expected %f", i, depth.Float(), rec.Depths[i])
		}
	}
}

func TestBuildTimestamps(t *testing.T) {

	rec := testRecord()
	opts := &BuildOptions{ProviderID: "US"}

	body := buildAndMarshal(t, rec, opts)

	ts := gjson.GetBytes(body, "features.1.properties.time").String()

	if ts != "2021-01-01T00:00:01.500Z" {
		t.Fatalf("Unexpected timestamp '%s'", ts)
	}
}

func TestBuildDefaultPlatform(t *testing.T) {

	rec := testRecord()

	opts := &BuildOptions{
		ProviderID:   "US",
		Organization: "CCOM/JHC-UNH",
		Email:        "wibl@ccom.unh.edu",
		Logger:       "WIBL",
	}

	body := buildAndMarshal(t, rec, opts)

	convention := gjson.GetBytes(body, "properties.convention").String()

	if convention != "CSB 2.0" {
		t.Fatalf("Unexpected convention '%s'", convention)
	}

	platform_type := gjson.GetBytes(body, "properties.platform.type").String()

	if platform_type != "Ship" {
		t.Fatalf("Unexpected platform type '%s'", platform_type)
	}

	unique_id := gjson.GetBytes(body, "properties.platform.uniqueID").String()

	if unique_id != "US-42" {
		t.Fatalf("Unexpected uniqueID '%s'", unique_id)
	}

	id_number := gjson.GetBytes(body, "properties.platform.IDNumber").String()

	if id_number != "42" {
		t.Fatalf("Unexpected IDNumber '%s'", id_number)
	}

	id_type := gjson.GetBytes(body, "properties.platform.IDType").String()

	if id_type != "LoggerName" {
		t.Fatalf("Unexpected IDType '%s'", id_type)
	}

	org := gjson.GetBytes(body, "properties.providerContactPoint.orgName").String()

	if org != "CCOM/JHC-UNH" {
		t.Fatalf("Unexpected orgName '%s'", org)
	}

	email := gjson.GetBytes(body, "properties.providerContactPoint.email").String()

	if email != "wibl@ccom.unh.edu" {
		t.Fatalf("Unexpected email '%s'", email)
	}

	logger := gjson.GetBytes(body, "properties.providerContactPoint.logger").String()

	if logger != "WIBL" {
		t.Fatalf("Unexpected logger '%s'", logger)
	}

	logger_version := gjson.GetBytes(body, "properties.providerContactPoint.loggerVersion").String()

	if logger_version != "1.2.1" {
		t.Fatalf("Unexpected loggerVersion '%s'", logger_version)
	}

	crs := gjson.GetBytes(body, "crs.properties.name").String()

	if crs != "EPSG:4326" {
		t.Fatalf("Unexpected CRS '%s'", crs)
	}
}

func TestBuildUnits(t *testing.T) {

	rec := testRecord()
	opts := &BuildOptions{ProviderID: "US"}

	body := buildAndMarshal(t, rec, opts)

	depth_units := gjson.GetBytes(body, "properties.depthUnits").String()

	if depth_units != "meters" {
		t.Fatalf("Unexpected depthUnits '%s'", depth_units)
	}

	time_units := gjson.GetBytes(body, "properties.timeUnits").String()

	if time_units != "ISO 8601" {
		t.Fatalf("Unexpected timeUnits '%s'", time_units)
	}
}

func TestBuildNamespaceIdempotent(t *testing.T) {

	rec := testRecord()
	rec.Logger = "US-42"

	opts := &BuildOptions{ProviderID: "US"}

	body := buildAndMarshal(t, rec, opts)

	unique_id := gjson.GetBytes(body, "properties.platform.uniqueID").String()

	if unique_id != "US-42" {
		t.Fatalf("Expected uniqueID to be unchanged, but got '%s'", unique_id)
	}
}

func TestBuildReplacesPlatformMetadata(t *testing.T) {

	rec := testRecord()
	rec.Metadata = json.RawMessage(`{"type": "buoy", "uniqueID": "99", "operator": "example.org"}`)

	opts := &BuildOptions{ProviderID: "US"}

	body := buildAndMarshal(t, rec, opts)

	platform := gjson.GetBytes(body, "properties.platform")

	if platform.Get("type").String() != "buoy" {
		t.Fatalf("Unexpected platform type '%s'", platform.Get("type").String())
	}

	if platform.Get("operator").String() != "example.org" {
		t.Fatalf("Unexpected operator '%s'", platform.Get("operator").String())
	}

	// Replacement is total: nothing from the default block may leak in.

	for _, leaked := range []string{"name", "IDType", "IDNumber"} {

		if platform.Get(leaked).Exists() {
			t.Fatalf("Default platform field '%s' leaked into replacement metadata", leaked)
		}
	}

	// The namespace rule applies to replacement metadata too.

	if platform.Get("uniqueID").String() != "US-99" {
		t.Fatalf("Unexpected uniqueID '%s'", platform.Get("uniqueID").String())
	}
}

func TestBuildMalformedMetadata(t *testing.T) {

	rec := testRecord()
	rec.Metadata = json.RawMessage(`{"uniqueID": `)

	opts := &BuildOptions{ProviderID: "US"}

	doc, err := Build(rec, opts)

	if err == nil {
		t.Fatalf("Expected build to fail on malformed metadata")
	}

	if !errors.Is(err, ErrMalformedMetadata) {
		t.Fatalf("Expected ErrMalformedMetadata, but got %v", err)
	}

	if doc != nil {
		t.Fatalf("Expected no document on failure")
	}
}

func TestBuildOmitsEmptyAlgorithms(t *testing.T) {

	rec := testRecord()
	opts := &BuildOptions{ProviderID: "US"}

	body := buildAndMarshal(t, rec, opts)

	if gjson.GetBytes(body, "properties.algorithms").Exists() {
		t.Fatalf("Expected no algorithms key for an empty algorithms list")
	}

	rec.Algorithms = []Algorithm{
		{Name: "deduplicate", Parameters: "radius=2.0"},
	}

	body = buildAndMarshal(t, rec, opts)

	algorithms := gjson.GetBytes(body, "properties.algorithms")

	if !algorithms.Exists() {
		t.Fatalf("Expected algorithms key to be present")
	}

	if algorithms.Get("0.name").String() != "deduplicate" {
		t.Fatalf("Unexpected algorithm name '%s'", algorithms.Get("0.name").String())
	}
}

func TestBuildLineage(t *testing.T) {

	rec := testRecord()
	opts := &BuildOptions{ProviderID: "US"}

	body := buildAndMarshal(t, rec, opts)

	lineage := gjson.GetBytes(body, "lineage")

	if !lineage.IsArray() || len(lineage.Array()) != 0 {
		t.Fatalf("Expected lineage to default to an empty sequence, but got '%s'", lineage.Raw)
	}

	rec.Lineage = json.RawMessage(`[{"type": "timestamping", "version": "1.0.2"}]`)

	body = buildAndMarshal(t, rec, opts)

	step := gjson.GetBytes(body, "lineage.0.type").String()

	if step != "timestamping" {
		t.Fatalf("Expected lineage to be carried verbatim, but got '%s'", step)
	}
}

func TestBuildMismatchedSequences(t *testing.T) {

	rec := testRecord()
	rec.Latitudes = rec.Latitudes[:2]

	opts := &BuildOptions{ProviderID: "US"}

	_, err := Build(rec, opts)

	if err == nil {
		t.Fatalf("Expected build to fail on mismatched observation sequences")
	}
}
