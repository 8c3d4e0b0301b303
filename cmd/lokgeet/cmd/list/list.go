package list

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lokgeet/internal/app/store"
	"lokgeet/internal/config"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Show the saved entries",
	Long: `Show the saved entries

- Prints the whole collection as JSON, newest entry last`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.FromEnv()
		st := store.NewJSONStore(cfg.StorePath())

		entries, err := st.LoadAll()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("no entries saved yet")
			return
		}

		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}
