package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/mcp"
	"github.com/mamaar/gocalc/pkg/calculation"
)

func main() {
	var (
		debugFlag   = flag.Bool("debug", false, "Enable debug logging on stderr")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s v%s\n", mcp.ServerName, cli.Version)
		fmt.Println("Model Context Protocol server for the gocalc calculator")
		os.Exit(0)
	}

	// stdout carries the protocol; diagnostics go to stderr only
	logger := cli.NewLogger(os.Stderr, *debugFlag)
	registry := calculation.NewDefaultRegistry(logger)

	mcpServer := mcp.NewMCPServer(mcp.NewCalcServer(registry, logger), cli.Version)

	logger.Info("starting MCP server on stdio", "operations", registry.Names())
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
