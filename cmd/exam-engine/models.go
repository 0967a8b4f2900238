package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/exam-engine/pkg/types"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List supported completion models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range types.SupportedModels() {
			d := types.ModelCatalog[name]
			marker := "  "
			if name == types.DefaultModel {
				marker = "* "
			}
			fmt.Printf("%s%-12s %-14s %s\n", marker, d.Name, d.Context, d.Description)
		}
		fmt.Println("\n* default")
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
