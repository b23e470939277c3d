package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nugate/nugate/internal/adapters/outbound/history"
	"github.com/nugate/nugate/internal/domain"
)

// registerResources registers all nugate MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. nugate://config - effective gate configuration
	s.AddResource(
		mcplib.NewResource(
			"nugate://config",
			"Gate Configuration",
			mcplib.WithResourceDescription("Effective configuration after merging .nugate.yaml over the defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 2. nugate://rules - heuristic rule catalog
	s.AddResource(
		mcplib.NewResource(
			"nugate://rules",
			"Rule Catalog",
			mcplib.WithResourceDescription("Heuristic rules with severities, categories, and fixability"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(projectPath),
	)

	// 3. nugate://history - recorded check runs
	s.AddResource(
		mcplib.NewResource(
			"nugate://history",
			"Check History",
			mcplib.WithResourceDescription("Past batch-check runs recorded for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg := loadConfig(projectPath)
		return jsonResource("nugate://config", cfg)
	}
}

func handleRulesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg := loadConfig(projectPath)

		rules := make(map[string]domain.RuleInfo, len(domain.Rules()))
		for _, id := range domain.Rules() {
			if cfg.RuleDisabled(id) {
				continue
			}
			rules[id] = domain.Rule(id)
		}
		return jsonResource("nugate://rules", rules)
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		return jsonResource("nugate://history", entries)
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
