package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/application/commands"
	"iconpack/internal/config"
	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

// RegisterReadTools adds the tools that inspect a source tree without writing anything.
func RegisterReadTools(s *server.MCPServer, repo ports.IconRepository, inspector ports.SVGInspector, rules domain.Rules) {
	s.AddTool(listIconsTool(), listIconsHandler(repo, inspector, rules))
	s.AddTool(showRulesTool(), showRulesHandler(rules))
}

// --- list_icons ---

func listIconsTool() mcp.Tool {
	return mcp.NewTool("list_icons",
		mcp.WithDescription("List the new UI icons of an IntelliJ source tree that have an old UI counterpart, with the identifier each gets in the icon pack."),
		mcp.WithString("sources_path",
			mcp.Description("Path to the IntelliJ sources folder (contains platform/icons/src/expui)"),
			mcp.Required(),
		),
		mcp.WithBoolean("with_size",
			mcp.Description("Also report the view box size of each old UI icon"),
		),
	)
}

func listIconsHandler(repo ports.IconRepository, inspector ports.SVGInspector, rules domain.Rules) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sourcesPath := filesystem.ExpandHome(req.GetString("sources_path", ""))
		var sizes ports.SVGInspector
		if req.GetBool("with_size", false) {
			sizes = inspector
		}

		result, err := commands.NewListIconsCommand(repo, sizes, sourcesPath, rules).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Icons) == 0 {
			return mcp.NewToolResultText("No icons found."), nil
		}

		var sb strings.Builder
		for _, icon := range result.Icons {
			fmt.Fprintf(&sb, "%s  %s  %s", icon.ShortKey, icon.Resolution, icon.SourcePath)
			if icon.Size != nil {
				fmt.Fprintf(&sb, "  %gx%g", icon.Size.Width, icon.Size.Height)
			}
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "\n%d icons (%d direct, %d substituted, %d unresolved)\n",
			result.Stats.Resolved(), result.Stats.Direct, result.Stats.Substituted, result.Stats.Unresolved)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show_rules ---

func showRulesTool() mcp.Tool {
	return mcp.NewTool("show_rules",
		mcp.WithDescription("Show the whitelist, path substitutions and short name fixes in effect, as YAML."),
	)
}

func showRulesHandler(rules domain.Rules) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := config.DumpRules(rules)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
