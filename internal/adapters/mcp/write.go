package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"iconpack/internal/adapters/console"
	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/application/commands"
	"iconpack/internal/config"
	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

// RegisterWriteTools adds the tools that write icon packs.
func RegisterWriteTools(s *server.MCPServer, repo ports.IconRepository, rules domain.Rules) {
	s.AddTool(buildTool(), buildHandler(repo, rules))
}

// --- build_icon_pack ---

func buildTool() mcp.Tool {
	return mcp.NewTool("build_icon_pack",
		mcp.WithDescription("Build "+domain.PackFileName+" from an IntelliJ source tree, replacing any previous pack, and report whether its content changed."),
		mcp.WithString("sources_path",
			mcp.Description("Path to the IntelliJ sources folder (contains platform/icons/src/expui)"),
			mcp.Required(),
		),
		mcp.WithString("version",
			mcp.Description("Icon pack version embedded in its name (default 1)"),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory to write the pack to (default: the server's working directory)"),
		),
	)
}

func buildHandler(repo ports.IconRepository, rules domain.Rules) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sourcesPath := filesystem.ExpandHome(req.GetString("sources_path", ""))
		version := req.GetString("version", "")
		outputDir := req.GetString("output_dir", config.DefaultOutputDir)

		var log strings.Builder
		reporter := console.NewReporter(&log, &log)
		store := filesystem.NewPackStore(outputDir)

		result, err := commands.NewBuildIconPackCommand(repo, store, reporter, sourcesPath, version, rules).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(log.String() + result.Message), nil
	}
}
