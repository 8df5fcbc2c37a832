package main

import (
	"fmt"
	"os"

	"github.com/promptforge/genbridge/config"
	"github.com/promptforge/genbridge/internal/modules/ai/chat/gemini"
	"github.com/promptforge/genbridge/internal/modules/logs"
)

// gemini-bridge forwards one message to the Gemini generateContent
// endpoint and prints the reply. It is driven by a non-technical
// embedding layer: the reply, or a readable error string, always goes
// to stdout, and nothing else does.
func main() {
	logs.InitConsole("warn")

	// Environment variables first; they avoid shell escaping issues.
	apiKey := os.Getenv("GEMINI_API_KEY")
	message := os.Getenv("GEMINI_MESSAGE")
	if apiKey == "" || message == "" {
		args := os.Args[1:]
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: gemini-bridge <api_key> <message>")
			fmt.Fprintln(os.Stderr, "Or set GEMINI_API_KEY and GEMINI_MESSAGE environment variables")
			os.Exit(1)
		}
		apiKey = args[0]
		message = args[1]
	}

	cfg := config.Default().Gemini
	cfg.APIKey = apiKey
	fmt.Println(gemini.Generate(cfg, message))
}
