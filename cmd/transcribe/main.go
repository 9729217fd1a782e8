package main

import (
	"fmt"
	"os"

	"batch-transcriber/cmd/transcribe/cmd"
	"batch-transcriber/internal/config"
)

func main() {
	// Non-blocking: a missing .env is fine and the run itself reports a missing key
	if _, _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 Copy .env.example to .env and add your DEEPGRAM_API_KEY\n")
	}

	cmd.Execute()
}
