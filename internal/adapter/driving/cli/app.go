package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/negreirosnet/netops-dashboard-go/internal/application/usecase"
	"github.com/negreirosnet/netops-dashboard-go/internal/shared/types"
	"github.com/negreirosnet/netops-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "netops-dashboard",
		Short:   "Negreiros NET client usage dashboard",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Negreiros NET Dashboard version: %s\n" .Version}}`)

	// Flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data-file", "f", "", "Path to the client roster CSV file (default clientes_petrolina.csv)")
	rootCmd.PersistentFlags().IntP("clients", "n", 0, "Synthetic roster size used when the data file is unavailable (default 150)")
	rootCmd.PersistentFlags().StringSliceP("bairros", "b", nil, "Neighborhoods to include (comma-separated, default: all)")
	rootCmd.PersistentFlags().StringSliceP("tipos", "p", nil, "Plan tiers to include (comma-separated, default: all)")
	rootCmd.PersistentFlags().StringP("criticos", "c", "", "Critical-client mode: todos, apenas-criticos, sem-criticos (default todos)")
	rootCmd.PersistentFlags().Float64P("consumo-min", "m", 0, "Minimum current usage in MB/s")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Prompt for the analysis filters interactively")
	rootCmd.PersistentFlags().Bool("trend", false, "Display only the monthly usage trend per neighborhood")
	rootCmd.PersistentFlags().StringP("report-name", "r", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, xlsx, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Suppress the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	dataFile, _ := flags.GetString("data-file")
	clients, _ := flags.GetInt("clients")
	bairros, _ := flags.GetStringSlice("bairros")
	tipos, _ := flags.GetStringSlice("tipos")
	criticos, _ := flags.GetString("criticos")
	consumoMin, _ := flags.GetFloat64("consumo-min")
	interactive, _ := flags.GetBool("interactive")
	trend, _ := flags.GetBool("trend")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	noBanner, _ := flags.GetBool("no-banner")

	// Diretório vazio cai no diretório corrente na hora da exportação,
	// depois de mesclado o arquivo de configuração.
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		DataFile:       dataFile,
		SyntheticCount: clients,
		Bairros:        bairros,
		Tipos:          tipos,
		Criticos:       criticos,
		ConsumoMin:     consumoMin,
		Interactive:    interactive,
		Trend:          trend,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
		NoBanner:       noBanner,
		BairrosSet:     flags.Changed("bairros"),
		TiposSet:       flags.Changed("tipos"),
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner(app.version)
	}

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
