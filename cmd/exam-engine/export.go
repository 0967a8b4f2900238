// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/exam-engine/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export question sets as numbered text study sheets",
	Long: `Export reads every per-lecture JSON file from the questions directory,
flattens the question/answer pairs in lexical file order, and writes three
text files into the output directory: questions only, answers only, and
interleaved question/answer pairs. Numbering is 1-based and continuous
across all lectures.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	questionsDir, _ := cmd.Flags().GetString("questions-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")

	records, err := export.LoadRecords(questionsDir, os.Stdout)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No questions loaded")
		return nil
	}

	fmt.Println("\nGenerated files:")
	if err := export.WriteTextFiles(records, outputDir, os.Stdout); err != nil {
		return err
	}

	fmt.Printf("\nComplete! Processed %d questions in total\n", len(records))
	return nil
}

func init() {
	exportCmd.Flags().String("questions-dir", "questions", "directory containing per-lecture JSON files")
	exportCmd.Flags().String("output-dir", "questions_txt", "output directory for text files")

	rootCmd.AddCommand(exportCmd)
}
