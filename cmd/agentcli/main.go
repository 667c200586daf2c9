package main

import (
	"github.com/joho/godotenv"

	"github.com/s22625/agentcli/internal/cli"
)

func main() {
	// Tokens and API keys may live in a local .env; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}
