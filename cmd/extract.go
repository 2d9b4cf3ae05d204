package cmd

import (
	"fmt"

	"github.com/radum/extrascont/extractor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extracts statement(s)",
	Long: `Extracts a given statement or statements.
Accepts a single PDF or a folder of PDFs and prints the parsed,
categorized transactions as JSON.`,
	Run: handler,
}

func handler(cmd *cobra.Command, args []string) {
	target := viper.GetString("target")
	fmt.Println("scanning ", target)
	extractor.ExecuteAgainstPath(target)
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("folder", "f", ".", "Folder in which extrascont will scan for files")
	viper.BindPFlag("target", extractCmd.Flags().Lookup("folder"))
}
