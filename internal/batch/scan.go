// Package batch drives the pipeline over a directory of datasets: scanning,
// skip-up-to-date, run summaries and a filesystem watch mode.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zigmaq/congreso-etl/internal/pipeline"
)

// FindDatasets lists the dataset directories under root, sorted by name.
// A dataset is any direct subdirectory containing a career sheet. Names
// starting with "~$" (office lock files) or "." are skipped.
func FindDatasets(root string) ([]pipeline.Dataset, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	var out []pipeline.Dataset
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if ignoredName(name) {
			continue
		}
		dir := filepath.Join(root, name)
		if _, err := os.Stat(filepath.Join(dir, pipeline.CareerFile)); err != nil {
			continue
		}
		out = append(out, pipeline.Dataset{Name: name, Dir: dir})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ignoredName reports whether a directory name is an office lock file or
// hidden entry that can never be a dataset.
func ignoredName(name string) bool {
	return strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".")
}

// upToDate reports whether every configured output for the dataset exists
// and is strictly newer than the newest input sheet. Equal mtimes reprocess.
func upToDate(ds pipeline.Dataset, outputDir string, formats []string) bool {
	var newestInput int64
	for _, sheet := range []string{pipeline.MembersFile, pipeline.CommitteesFile, pipeline.CareerFile} {
		fi, err := os.Stat(filepath.Join(ds.Dir, sheet))
		if err != nil {
			continue
		}
		if m := fi.ModTime().UnixNano(); m > newestInput {
			newestInput = m
		}
	}
	for _, format := range formats {
		fi, err := os.Stat(filepath.Join(outputDir, ds.Name+"_processed."+format))
		if err != nil {
			return false
		}
		if fi.ModTime().UnixNano() <= newestInput {
			return false
		}
	}
	return true
}
