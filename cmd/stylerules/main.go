package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/okafor/stylerules/internal/cli"
)

func main() {
	// Optional .env for GROQ_API_KEY and friends
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
