// Inkwell: Creative Writing MCP Server
//
// An MCP server that gives AI assistants a creative-writing workspace:
// project management, markdown file tools, writing templates, guidance
// prompts, and PDF/EPUB export.
//
// Usage:
//
//	inkwell serve    # Start MCP server (stdio transport)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"inkwell/internal/logging"
	inkserver "inkwell/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("inkwell v%s\n", inkserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, err := inkserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Graceful shutdown on interrupt. Stdout belongs to the MCP stdio
	// transport; anything human-facing goes to stderr or the log.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		logging.Info("shutting down")
		cancel()
	}()

	_ = ctx // stdio server manages its own lifecycle

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Inkwell v%s — Creative Writing MCP Server

Usage:
  inkwell serve      Start the MCP server on stdio
  inkwell version    Print the version
  inkwell help       Show this help

Configuration:
  INKWELL_OUTPUT_DIR   Directory for writing projects (default: output)
  DEBUG=1              Verbose logging to inkwell.log
`, inkserver.Version)
}
