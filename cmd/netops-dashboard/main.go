package main

import (
	"fmt"
	"os"

	"github.com/negreirosnet/netops-dashboard-go/internal/adapter/driven/config"
	"github.com/negreirosnet/netops-dashboard-go/internal/adapter/driven/export"
	"github.com/negreirosnet/netops-dashboard-go/internal/adapter/driven/roster"
	"github.com/negreirosnet/netops-dashboard-go/internal/adapter/driving/cli"
	"github.com/negreirosnet/netops-dashboard-go/internal/application/usecase"
	"github.com/negreirosnet/netops-dashboard-go/pkg/console"
	"github.com/negreirosnet/netops-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	rosterRepo := roster.NewRosterRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		rosterRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
