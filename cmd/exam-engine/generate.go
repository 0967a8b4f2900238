// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/exam-engine/internal/generate"
	"github.com/pdiddy/exam-engine/internal/lecture"
	"github.com/pdiddy/exam-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate exam questions from lecture PDFs",
	Long: `Generate extracts text from each lecture PDF, submits it to the
completion API with the prompt template, and writes one QuestionSet JSON
file per lecture into the output directory.

By default every *.pdf file in the slices directory is processed in name
order. Use --lecture to process a single file, or --manifest to process an
explicit list. A lecture that fails (unreadable PDF, malformed API
response, transport fault) is reported and skipped; the batch continues.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := generationConfig(cmd)
	if err != nil {
		return err
	}

	key := apiKey(cfg.APIKey)
	if key == "" {
		return fmt.Errorf("no API key: use --api-key, set OPENAI_API_KEY, or add .secrets/openai-api-key")
	}
	cfg.APIKey = key

	tmpl, err := generate.LoadTemplate(cfg.PromptFile)
	if err != nil {
		return err
	}

	files, err := selectLectures(cmd, cfg.SlicesDir)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d PDF files\n", len(files))
	fmt.Printf("Each lecture will generate %d questions\n", cfg.NumQuestions)
	if desc, ok := types.ModelCatalog[cfg.Model]; ok {
		fmt.Printf("Using model: %s - %s (Context: %s)\n\n", desc.Name, desc.Description, desc.Context)
	}

	proc := &generate.Processor{
		Backend:   generate.NewOpenAIBackend(cfg.APIKey, cfg.Model),
		Extractor: lecture.PDFExtractor{},
		Template:  tmpl,
		Config:    cfg,
	}

	summary := proc.GenerateAll(cmd.Context(), files, os.Stdout)

	// Per-lecture failures are reported above; they never fail the run.
	fmt.Printf("\nComplete! Successfully processed %d/%d files\n", summary.Generated, summary.Total())
	return nil
}

// selectLectures resolves the working set from --manifest, --lecture, or
// the full slices directory.
func selectLectures(cmd *cobra.Command, slicesDir string) ([]string, error) {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	only, _ := cmd.Flags().GetString("lecture")

	if manifestPath != "" {
		m, err := lecture.ReadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		return lecture.SelectManifest(slicesDir, m)
	}
	return lecture.Select(slicesDir, only)
}

func generationConfig(cmd *cobra.Command) (types.GenerationConfig, error) {
	numQuestions, _ := cmd.Flags().GetInt("num-questions")
	key, _ := cmd.Flags().GetString("api-key")
	slicesDir, _ := cmd.Flags().GetString("slices-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	promptFile, _ := cmd.Flags().GetString("prompt-file")
	model, _ := cmd.Flags().GetString("model")

	if _, ok := types.ModelCatalog[model]; !ok {
		return types.GenerationConfig{}, fmt.Errorf("unsupported model %q: use one of %v", model, types.SupportedModels())
	}

	return types.GenerationConfig{
		AIConfig: types.AIConfig{
			Model:  model,
			APIKey: key,
		},
		NumQuestions: numQuestions,
		SlicesDir:    slicesDir,
		OutputDir:    outputDir,
		PromptFile:   promptFile,
	}, nil
}

func init() {
	generateCmd.Flags().Int("num-questions", 20, "number of questions to generate per lecture")
	generateCmd.Flags().String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env or .secrets/openai-api-key)")
	generateCmd.Flags().String("slices-dir", "slices", "directory containing lecture PDF files")
	generateCmd.Flags().String("output-dir", "questions", "output directory for per-lecture JSON files")
	generateCmd.Flags().String("prompt-file", "prompts/exam.txt", "prompt template file")
	generateCmd.Flags().String("lecture", "", "process only the named lecture file (e.g. Lecture.01.Introduction.pdf)")
	generateCmd.Flags().String("manifest", "", "YAML file listing lecture files to process")
	generateCmd.Flags().String("model", types.DefaultModel, "model identifier (see 'exam-engine models')")

	rootCmd.AddCommand(generateCmd)
}
