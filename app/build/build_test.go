package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func TestRunWithOptionsContinuesOnFailure(t *testing.T) {

	ctx := context.Background()

	dir := t.TempDir()

	// The latitude sequence is short so this record can not be built.

	bad := `{"t": [1609459200.0, 1609459201.5], "z": [10.5, 11.0], "lat": [43.075], "lon": [-70.741, -70.742], "logger": "41", "shipname": "RV Broken"}`

	good := `{"t": [1609459200.0], "z": [10.5], "lat": [43.075], "lon": [-70.741], "logger": "42", "shipname": "RV Example", "loggerversion": "1.2.1"}`

	err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0644)

	if err != nil {
		t.Fatalf("Failed to write record, %v", err)
	}

	err = os.WriteFile(filepath.Join(dir, "good.json"), []byte(good), 0644)

	if err != nil {
		t.Fatalf("Failed to write record, %v", err)
	}

	opts := &RunOptions{
		RecordReaderURI: "fs://" + dir,
		WriterURI:       "fs://" + dir,
		ProviderID:      "US",
		Timezone:        "UTC",
		Paths:           []string{"bad.json", "good.json"},
	}

	err = RunWithOptions(ctx, opts)

	if err == nil {
		t.Fatalf("Expected an error for the failing record")
	}

	// The failing record must not stop the batch: the record after it is
	// still converted.

	body, read_err := os.ReadFile(filepath.Join(dir, "good.geojson"))

	if read_err != nil {
		t.Fatalf("Failed to read document for record after failure, %v", read_err)
	}

	unique_id := gjson.GetBytes(body, "properties.platform.uniqueID").String()

	if unique_id != "US-42" {
		t.Fatalf("Unexpected uniqueID '%s'", unique_id)
	}
}
