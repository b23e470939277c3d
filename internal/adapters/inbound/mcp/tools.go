package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nugate/nugate/internal/adapters/outbound/config"
	"github.com/nugate/nugate/internal/adapters/outbound/gitinfo"
	"github.com/nugate/nugate/internal/adapters/outbound/history"
	"github.com/nugate/nugate/internal/adapters/outbound/scanner"
	"github.com/nugate/nugate/internal/adapters/outbound/toolrunner"
	"github.com/nugate/nugate/internal/application"
	"github.com/nugate/nugate/internal/domain"
)

// registerTools registers all nugate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. nugate_check_file
	s.AddTool(
		mcplib.NewTool("nugate_check_file",
			mcplib.WithDescription("Run all validators against a script file and return the aggregate report as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the script file, relative to the project root"),
			),
		),
		handleCheckFile(projectPath),
	)

	// 2. nugate_gate_content
	s.AddTool(
		mcplib.NewTool("nugate_gate_content",
			mcplib.WithDescription("Evaluate proposed script content before it is written and return the gate decision"),
			mcplib.WithString("file_path",
				mcplib.Required(),
				mcplib.Description("Path the content would be written to"),
			),
			mcplib.WithString("content",
				mcplib.Required(),
				mcplib.Description("Proposed script content"),
			),
		),
		handleGateContent(projectPath),
	)

	// 3. nugate_check_project
	s.AddTool(
		mcplib.NewTool("nugate_check_project",
			mcplib.WithDescription("Check every governed script in the project and return the per-file reports as JSON"),
		),
		handleCheckProject(projectPath),
	)

	// 4. nugate_rules
	s.AddTool(
		mcplib.NewTool("nugate_rules",
			mcplib.WithDescription("Returns the heuristic rule catalog with severities and fixability"),
		),
		handleRules(projectPath),
	)
}

// loadConfig reads project configuration, degrading to built-in defaults so
// MCP tool calls never fail on a broken .nugate.yaml.
func loadConfig(projectPath string) domain.GateConfig {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return domain.DefaultConfig()
	}
	return cfg
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg := loadConfig(projectPath)
		svc := application.NewReportService(toolrunner.New(), cfg)

		if !filepath.IsAbs(file) {
			file = filepath.Join(projectPath, file)
		}
		report := svc.Check(ctx, file)
		return jsonResult(report)
	}
}

func handleGateContent(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		content, err := request.RequireString("content")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg := loadConfig(projectPath)
		svc := application.NewGateService(toolrunner.New(), cfg)

		decision := svc.Evaluate(ctx, filePath, content)
		return jsonResult(decision)
	}
}

func handleCheckProject(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg := loadConfig(projectPath)
		svc := application.NewCheckService(
			scanner.New(),
			application.NewReportService(toolrunner.New(), cfg),
			gitinfo.New(),
			history.New(),
		)

		project, err := svc.CheckProject(ctx, projectPath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(project)
	}
}

func handleRules(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg := loadConfig(projectPath)

		type ruleEntry struct {
			ID          string `json:"id"`
			Severity    string `json:"severity"`
			Category    string `json:"category"`
			Fixable     bool   `json:"fixable"`
			Disabled    bool   `json:"disabled"`
			Description string `json:"description"`
		}

		var entries []ruleEntry
		for _, id := range domain.Rules() {
			info := domain.Rule(id)
			entries = append(entries, ruleEntry{
				ID:          id,
				Severity:    info.Severity,
				Category:    info.Category,
				Fixable:     info.Fixable,
				Disabled:    cfg.RuleDisabled(id),
				Description: info.Description,
			})
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
