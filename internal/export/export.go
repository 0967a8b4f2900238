// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export flattens per-lecture QuestionSet files into one globally
// ordered record sequence and renders it as plain-text study sheets.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/exam-engine/pkg/types"
)

// Output file names written by WriteTextFiles.
const (
	QuestionsFile = "questions.txt"
	AnswersFile   = "answers.txt"
	CombinedFile  = "questions_and_answers.txt"
)

// LoadRecords reads every QuestionSet JSON file in questionsDir, sorted
// lexically by name, and flattens the well-formed entries into records with
// provenance. Global ordering is file-name order, then in-file order.
//
// A file that fails to parse or lacks the questions key is skipped whole
// with a warning; an entry missing its question or answer field is dropped
// individually without failing its siblings. A missing directory or empty
// selection yields an empty result with a console message, never an error
// exit: the export side has no fatal-exit distinction.
func LoadRecords(questionsDir string, w io.Writer) ([]types.FlattenedRecord, error) {
	entries, err := os.ReadDir(questionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "no JSON files found in %s\n", questionsDir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading questions directory %s: %w", questionsDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Fprintf(w, "no JSON files found in %s\n", questionsDir)
		return nil, nil
	}
	fmt.Fprintf(w, "found %d JSON files\n", len(files))

	var records []types.FlattenedRecord
	for _, name := range files {
		recs, err := loadFile(filepath.Join(questionsDir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
			continue
		}
		records = append(records, recs...)
	}

	fmt.Fprintf(w, "loaded %d questions in total\n", len(records))
	return records, nil
}

// rawEntry mirrors one question object on disk. Pointer fields distinguish
// an absent key from an empty string: presence, not truthiness, decides
// whether an entry is kept.
type rawEntry struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// loadFile parses one QuestionSet file and returns its well-formed entries.
func loadFile(path string) ([]types.FlattenedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	qRaw, ok := doc["questions"]
	if !ok {
		return nil, fmt.Errorf("no 'questions' field found in %s", path)
	}

	var entries []rawEntry
	if err := json.Unmarshal(qRaw, &entries); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	source := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var records []types.FlattenedRecord
	for _, e := range entries {
		if e.Question == nil || e.Answer == nil {
			continue
		}
		records = append(records, types.FlattenedRecord{
			Question: *e.Question,
			Answer:   *e.Answer,
			Source:   source,
		})
	}
	return records, nil
}

// WriteTextFiles renders the flattened records into three text files in
// outDir (created if absent): questions only, answers only, and interleaved
// question/answer pairs. Numbering is 1-based and assigned by traversal
// order, identical across all three files. Existing files are overwritten.
func WriteTextFiles(records []types.FlattenedRecord, outDir string, w io.Writer) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	var questions, answers, combined strings.Builder
	for i, rec := range records {
		n := i + 1
		fmt.Fprintf(&questions, "%d. %s\n\n", n, rec.Question)
		fmt.Fprintf(&answers, "%d. %s\n\n", n, rec.Answer)
		fmt.Fprintf(&combined, "%d. %s\nA: %s\n\n", n, rec.Question, rec.Answer)
	}

	outputs := []struct {
		name    string
		content string
	}{
		{QuestionsFile, questions.String()},
		{AnswersFile, answers.String()},
		{CombinedFile, combined.String()},
	}

	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := os.WriteFile(path, []byte(out.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(w, "  %s\n", path)
	}
	return nil
}
