package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/wrenfield/scan-inbox/internal/detect"
	"github.com/wrenfield/scan-inbox/internal/scan"
	"github.com/wrenfield/scan-inbox/internal/scanning"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("scan-inbox")
	var (
		port        = fs.IntLong("port", 8080, "HTTP server port")
		historyPath = fs.StringLong("history", "scan-inbox.db", "Scan history database path (empty disables history)")
		scannerType = fs.StringLong("scanner", "gemini", "Scanner type: 'gemini', 'ollama', or 'none'")
		geminiKey   = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		ollamaURL   = fs.StringLong("ollama-url", "http://localhost:11434", "Ollama API base URL")
		ollamaModel = fs.StringLong("ollama-model", "llava", "Ollama model name (e.g., llava, llava-phi3, qwen2-vl)")
		authUser    = fs.StringLong("auth-user", "", "Basic auth username (optional)")
		authPass    = fs.StringLong("auth-pass", "", "Basic auth password (optional)")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("SCAN_INBOX"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Scan history is optional
	var history scan.History
	if *historyPath != "" {
		slog.Info("Opening scan history...", "path", *historyPath)
		h, err := scan.NewBoltHistory(*historyPath)
		if err != nil {
			slog.Error("Failed to open scan history", "error", err)
			os.Exit(1)
		}
		defer h.Close()
		history = h
	}

	// Initialize scanner based on type. A missing credential is not fatal:
	// the server starts and smart scans report a configuration error.
	var scanner scanning.Scanner
	switch *scannerType {
	case "gemini":
		apiKey := *geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			slog.Warn("Gemini API key not set; smart scans will fail until --gemini-key or GEMINI_API_KEY is configured")
			break
		}
		slog.Info("Initializing Gemini scanner...", "model", *geminiModel)
		g, err := scanning.NewGemini(apiKey, *geminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
		scanner = g
	case "ollama":
		slog.Info("Initializing Ollama scanner...", "url", *ollamaURL, "model", *ollamaModel)
		o, err := scanning.NewOllama(*ollamaURL, *ollamaModel)
		if err != nil {
			slog.Error("Failed to initialize Ollama", "error", err)
			os.Exit(1)
		}
		scanner = o
	case "none":
		slog.Info("No remote scanner configured; only quick scans will succeed")
	default:
		slog.Error("Invalid scanner type", "type", *scannerType, "valid", "gemini, ollama, or none")
		os.Exit(1)
	}
	if scanner != nil {
		defer scanner.Close()
	}

	service := scan.NewService(detect.NewEngine(), scanner, history)

	basicAuth := scan.BasicAuth{
		Username: *authUser,
		Password: *authPass,
	}
	server := scan.NewServer(service, basicAuth)

	addr := fmt.Sprintf(":%d", *port)
	go func() {
		if err := server.Start(addr); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started", "address", fmt.Sprintf("http://localhost%s", addr))
	if *authUser != "" || *authPass != "" {
		slog.Info("Basic auth enabled", "user", *authUser)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
}
