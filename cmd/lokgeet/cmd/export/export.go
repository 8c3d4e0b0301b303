package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lokgeet/internal/app/store"
	"lokgeet/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath (defaults to export.json in the data directory)")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole collection to a JSON file",
	Long: `Export the whole collection to a JSON file

- Writes every entry in the same shape as the backing store`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.FromEnv()
		if outputFilePath == "" {
			outputFilePath = cfg.DefaultExportPath()
		}

		st := store.NewJSONStore(cfg.StorePath())
		count, err := st.ExportAll(outputFilePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("export finished, written %d entries to %v\n", count, outputFilePath)
	},
}
