// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lecture selects lecture PDFs from the slices directory and
// extracts their text content.
package lecture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// pdfExt is the input file extension the selection matches.
const pdfExt = ".pdf"

// Select returns the working set of lecture PDF paths. When only is empty,
// every *.pdf file directly under slicesDir is returned in lexical name
// order. When only names a single lecture file, the returned set contains
// just that file; a missing file is an error.
//
// A missing slices directory and an empty selection are both errors: the
// batch cannot meaningfully proceed without input.
func Select(slicesDir, only string) ([]string, error) {
	if _, err := os.Stat(slicesDir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("slices directory does not exist: %s", slicesDir)
		}
		return nil, fmt.Errorf("stat slices directory %s: %w", slicesDir, err)
	}

	if only != "" {
		path := filepath.Join(slicesDir, only)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("lecture file does not exist: %s", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(slicesDir)
	if err != nil {
		return nil, fmt.Errorf("reading slices directory %s: %w", slicesDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pdfExt) {
			continue
		}
		files = append(files, filepath.Join(slicesDir, entry.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", slicesDir)
	}
	return files, nil
}

// Stem returns the base name of path with its extension stripped. It names
// per-lecture output files and the provenance field of flattened records.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
