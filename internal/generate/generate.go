// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate turns lecture text into exam question sets through the
// completion API and persists one JSON file per lecture.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/exam-engine/internal/lecture"
	"github.com/pdiddy/exam-engine/pkg/types"
)

// BatchSummary holds counts from a batch generation run.
type BatchSummary struct {
	Generated int
	Failed    int
}

// Total returns the number of lectures processed.
func (s BatchSummary) Total() int {
	return s.Generated + s.Failed
}

// HasFailures reports whether any lectures failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// Processor orchestrates extraction, generation, and persistence for
// lecture files.
type Processor struct {
	Backend   Backend
	Extractor lecture.Extractor
	Template  string
	Config    types.GenerationConfig
}

// ProcessLecture handles one lecture PDF end to end: extract the text,
// render the prompt, call the backend, normalize the response, and write
// the QuestionSet JSON into the output directory (created if absent). The
// output file is named after the lecture's stem and overwritten wholesale
// if it already exists.
func (p *Processor) ProcessLecture(ctx context.Context, pdfPath string, w io.Writer) error {
	fmt.Fprintf(w, "processing %s\n", pdfPath)

	text, err := p.Extractor.ExtractText(pdfPath)
	if err != nil {
		return fmt.Errorf("extracting text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text content extracted")
	}
	fmt.Fprintf(w, "  extracted %d characters\n", len(text))

	prompt := RenderPrompt(p.Template, p.Config.NumQuestions, text)

	fmt.Fprintf(w, "  generating %d questions...\n", p.Config.NumQuestions)
	raw, err := p.Backend.GenerateQuestions(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generating questions: %w", err)
	}

	qs, err := ParseQuestionSet(raw)
	if err != nil {
		return err
	}

	outPath := filepath.Join(p.Config.OutputDir, lecture.Stem(pdfPath)+".json")
	if err := writeQuestionSet(outPath, qs); err != nil {
		return err
	}

	fmt.Fprintf(w, "  saved %s (%d questions)\n", outPath, len(qs.Questions))
	return nil
}

// GenerateAll loops the processor over the selected lecture files, printing
// per-file status to w. A lecture's failure never aborts the batch; the
// summary carries the counts for the final report.
func (p *Processor) GenerateAll(ctx context.Context, files []string, w io.Writer) BatchSummary {
	var summary BatchSummary
	for _, f := range files {
		if err := p.ProcessLecture(ctx, f, w); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", lecture.Stem(f), err)
			summary.Failed++
		} else {
			summary.Generated++
		}
		// Blank separator between lecture status blocks.
		fmt.Fprintln(w)
	}
	return summary
}

// writeQuestionSet serializes the set as pretty-printed UTF-8 JSON. The
// encoder keeps non-ASCII runes and angle brackets literal; entries are
// written exactly as the model returned them.
func writeQuestionSet(path string, qs *RawQuestionSet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(qs); err != nil {
		return fmt.Errorf("marshaling question set: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
