package main

import (
	"github.com/joho/godotenv"

	"github.com/rfagen/boston-concerts/internal/cli"
)

func main() {
	// Optional .env file for local runs; absence is not an error.
	_ = godotenv.Load()

	cli.Execute()
}
