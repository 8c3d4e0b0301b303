package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"lokgeet/cmd/lokgeet/cmd/export"
	"lokgeet/cmd/lokgeet/cmd/intake"
	"lokgeet/cmd/lokgeet/cmd/list"
	"lokgeet/cmd/lokgeet/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lokgeet",
	Short: "A field recorder companion for collecting folk songs and lullabies",
	Long: `A field recorder companion for collecting folk songs and lullabies.
- Take a recorded audio file and transcribe it with a whisper model
- Romanize the transcript and collect metadata from the operator
- Append the consented entry to the local JSON collection`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(intake.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
