// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/exam-engine/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "B.json", `{"questions": [{"question": "BQ1", "answer": "BA1"}]}`)
	writeFile(t, dir, "A.json", `{"questions": [
		{"question": "AQ1", "answer": "AA1"},
		{"question": "AQ2", "answer": "AA2"}
	]}`)
	writeFile(t, dir, "readme.txt", "not a question set")

	var out bytes.Buffer
	records, err := LoadRecords(dir, &out)
	require.NoError(t, err)

	// Lexical file order, then in-file order; source is the file stem.
	want := []types.FlattenedRecord{
		{Question: "AQ1", Answer: "AA1", Source: "A"},
		{Question: "AQ2", Answer: "AA2", Source: "A"},
		{Question: "BQ1", Answer: "BA1", Source: "B"},
	}
	assert.Equal(t, want, records)
	assert.Contains(t, out.String(), "found 2 JSON files")
	assert.Contains(t, out.String(), "loaded 3 questions")
}

func TestLoadRecordsSkipsFileWithoutQuestionsKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A.json", `{"topics": [{"question": "leaks?", "answer": "no"}]}`)
	writeFile(t, dir, "B.json", `{"questions": [{"question": "Q", "answer": "A"}]}`)

	var out bytes.Buffer
	records, err := LoadRecords(dir, &out)
	require.NoError(t, err)

	// The whole file is excluded; nothing partial leaks from it.
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].Source)
	assert.Contains(t, out.String(), "no 'questions' field")
}

func TestLoadRecordsDropsMalformedEntriesIndividually(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A.json", `{"questions": [
		{"question": "Q1", "answer": "A1"},
		{"question": "no answer"},
		{"answer": "no question"},
		{"question": "", "answer": ""},
		{"question": "Q2", "answer": "A2"}
	]}`)

	var out bytes.Buffer
	records, err := LoadRecords(dir, &out)
	require.NoError(t, err)

	// Siblings survive; present-but-empty fields still count as present.
	want := []types.FlattenedRecord{
		{Question: "Q1", Answer: "A1", Source: "A"},
		{Question: "", Answer: "", Source: "A"},
		{Question: "Q2", Answer: "A2", Source: "A"},
	}
	assert.Equal(t, want, records)
}

func TestLoadRecordsSkipsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A.json", `{"questions": [`)
	writeFile(t, dir, "B.json", `{"questions": [{"question": "Q", "answer": "A"}]}`)

	var out bytes.Buffer
	records, err := LoadRecords(dir, &out)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, out.String(), "warning: unable to parse")
}

func TestLoadRecordsEmptySelections(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		var out bytes.Buffer
		records, err := LoadRecords(t.TempDir(), &out)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Contains(t, out.String(), "no JSON files found")
	})

	t.Run("missing directory", func(t *testing.T) {
		var out bytes.Buffer
		records, err := LoadRecords(filepath.Join(t.TempDir(), "nope"), &out)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Contains(t, out.String(), "no JSON files found")
	})
}

func TestWriteTextFiles(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "questions_txt")
	records := []types.FlattenedRecord{
		{Question: "What is A?", Answer: "A is A.", Source: "A"},
		{Question: "What is B?", Answer: "B is B.", Source: "B"},
	}

	var out bytes.Buffer
	require.NoError(t, WriteTextFiles(records, outDir, &out))

	questions, err := os.ReadFile(filepath.Join(outDir, QuestionsFile))
	require.NoError(t, err)
	assert.Equal(t, "1. What is A?\n\n2. What is B?\n\n", string(questions))

	answers, err := os.ReadFile(filepath.Join(outDir, AnswersFile))
	require.NoError(t, err)
	assert.Equal(t, "1. A is A.\n\n2. B is B.\n\n", string(answers))

	combined, err := os.ReadFile(filepath.Join(outDir, CombinedFile))
	require.NoError(t, err)
	assert.Equal(t, "1. What is A?\nA: A is A.\n\n2. What is B?\nA: B is B.\n\n", string(combined))
}

func TestWriteTextFilesOverwritesExisting(t *testing.T) {
	outDir := t.TempDir()
	writeFile(t, outDir, QuestionsFile, "stale content\n")

	records := []types.FlattenedRecord{{Question: "Q", Answer: "A", Source: "S"}}
	require.NoError(t, WriteTextFiles(records, outDir, &bytes.Buffer{}))

	data, err := os.ReadFile(filepath.Join(outDir, QuestionsFile))
	require.NoError(t, err)
	assert.Equal(t, "1. Q\n\n", string(data))
}

func TestWriteTextFilesNumberingIsContinuous(t *testing.T) {
	outDir := t.TempDir()
	records := make([]types.FlattenedRecord, 12)
	for i := range records {
		records[i] = types.FlattenedRecord{Question: "q", Answer: "a", Source: "s"}
	}
	require.NoError(t, WriteTextFiles(records, outDir, &bytes.Buffer{}))

	data, err := os.ReadFile(filepath.Join(outDir, QuestionsFile))
	require.NoError(t, err)

	entries := strings.Split(strings.TrimSuffix(string(data), "\n\n"), "\n\n")
	require.Len(t, entries, 12)
	for i, entry := range entries {
		assert.True(t, strings.HasPrefix(entry, strconv.Itoa(i+1)+". "), "entry %d: %q", i+1, entry)
	}
}
