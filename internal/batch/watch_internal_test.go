package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zigmaq/congreso-etl/internal/pipeline"
)

func TestDatasetFor(t *testing.T) {
	root := t.TempDir()
	ds := filepath.Join(root, "lxi")
	if err := os.MkdirAll(ds, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ds, pipeline.CareerFile), []byte("dip_id,tipo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Directory without a career sheet is not a dataset.
	notes := filepath.Join(root, "notes")
	if err := os.MkdirAll(notes, 0o755); err != nil {
		t.Fatal(err)
	}
	// A pipeline output written into the root itself.
	output := filepath.Join(root, "lxi_processed.csv")
	if err := os.WriteFile(output, []byte("dip_id\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &Runner{}
	cases := []struct {
		path string
		want string
	}{
		{filepath.Join(ds, pipeline.CareerFile), "lxi"},
		{filepath.Join(ds, pipeline.MembersFile), "lxi"},
		{ds, "lxi"},
		{output, ""},
		{filepath.Join(notes, "todo.txt"), ""},
		{notes, ""},
		{root, ""},
		{filepath.Join(root, ".staging", pipeline.CareerFile), ""},
		{filepath.Join(root, "~$lxi", pipeline.CareerFile), ""},
		{filepath.Join(filepath.Dir(root), "elsewhere.csv"), ""},
	}
	for _, c := range cases {
		if _, got := r.datasetFor(root, c.path); got != c.want {
			t.Errorf("datasetFor(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}
