package cli

import (
	"github.com/nugate/nugate/internal/adapters/outbound/config"
	"github.com/nugate/nugate/internal/adapters/outbound/gitinfo"
	"github.com/nugate/nugate/internal/adapters/outbound/history"
	"github.com/nugate/nugate/internal/adapters/outbound/scanner"
	"github.com/nugate/nugate/internal/adapters/outbound/toolrunner"
	"github.com/nugate/nugate/internal/application"
	"github.com/nugate/nugate/internal/domain"
)

// loadConfig reads project configuration, degrading to the built-in
// defaults when the file is missing or malformed. Hook invocations must
// never crash on a broken .nugate.yaml.
func loadConfig(projectPath string) domain.GateConfig {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return domain.DefaultConfig()
	}
	return cfg
}

func newGateService(cfg domain.GateConfig) *application.GateService {
	return application.NewGateService(toolrunner.New(), cfg)
}

func newReportService(cfg domain.GateConfig) *application.ReportService {
	return application.NewReportService(toolrunner.New(), cfg)
}

func newCheckService(cfg domain.GateConfig) *application.CheckService {
	return application.NewCheckService(
		scanner.New(),
		newReportService(cfg),
		gitinfo.New(),
		history.New(),
	)
}

func newFixService(cfg domain.GateConfig) *application.FixService {
	return application.NewFixService(toolrunner.New(), newReportService(cfg), cfg)
}
