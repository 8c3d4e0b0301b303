package main

import (
	"fmt"
	"os"

	"lokgeet/cmd/lokgeet/cmd"
	"lokgeet/internal/config"
)

func main() {
	// Load .env if present. A missing ASR key is not fatal: transcription
	// degrades to manual input.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
