package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"iconpack/internal/adapters/filesystem"
	mcpadapter "iconpack/internal/adapters/mcp"
	"iconpack/internal/adapters/svg"
	"iconpack/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "rules file overriding the built-in tables")
	flag.Parse()

	rules, err := config.LoadRules(filesystem.ExpandHome(*configFlag))
	if err != nil {
		log.Fatalf("iconpack-mcp: %v", err)
	}

	repo := filesystem.NewIconRepository()

	mcpServer := server.NewMCPServer(
		"iconpack-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, svg.NewInspector(), rules)
	mcpadapter.RegisterWriteTools(mcpServer, repo, rules)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("iconpack-mcp: %v", err)
	}
}
