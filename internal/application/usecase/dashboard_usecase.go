package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/pterm/pterm"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
	"github.com/negreirosnet/netops-dashboard-go/internal/domain/repository"
	"github.com/negreirosnet/netops-dashboard-go/internal/shared/types"
)

// maxTableRows limita a tabela de dados exibida no terminal; o export
// sempre carrega o roster completo.
const maxTableRows = 30

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	rosterRepo repository.RosterRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	trends     *TrendSynthesizer
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	rosterRepo repository.RosterRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		rosterRepo: rosterRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		trends:     NewTrendSynthesizer(),
	}
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	// Mescla o arquivo de configuração, se especificado
	if args.ConfigFile != "" {
		if err := uc.mergeConfig(args); err != nil {
			return err
		}
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv", "json", "xlsx", "pdf":
		default:
			return fmt.Errorf("%w: %q", types.ErrInvalidReportType, reportType)
		}
	}

	criticos, err := types.ParseCriticalMode(args.Criticos)
	if err != nil {
		return err
	}

	// Carrega o roster de clientes
	status := uc.console.Status("Loading client data...")
	result, err := uc.rosterRepo.Load(ctx, args.DataFile, args.SyntheticCount)
	status.Stop()
	if err != nil {
		return err
	}

	if result.Simulated() && result.FallbackReason != "" {
		uc.console.LogWarning("Using simulated data: %s", result.FallbackReason)
	}
	uc.console.Printf("%s\n\n", pterm.FgGray.Sprintf("Fonte dos dados: %s", result.Source))

	// Monta os critérios de filtragem (flags ou widgets interativos)
	criteria, err := uc.resolveCriteria(args, criticos, result.Clients)
	if err != nil {
		return err
	}

	filtered := ApplyFilters(result.Clients, criteria)
	kpis := ComputeKPIs(filtered)

	// Modo de tendência exibe apenas a análise mensal
	if args.Trend {
		uc.renderTrend(filtered, result.Clients)
		return nil
	}

	uc.renderHero(kpis)
	uc.renderKPIs(kpis)
	uc.renderCharts(filtered, criteria.Bairros)
	uc.renderTrend(filtered, result.Clients)
	uc.renderMap(filtered)
	uc.renderTable(filtered)

	// Exporta os relatórios do dashboard
	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(filtered, kpis, result.Source, args)
	}

	return nil
}

// mergeConfig carrega o arquivo de configuração e preenche os campos
// que não foram informados na linha de comando; flags explícitas têm
// precedência.
func (uc *DashboardUseCase) mergeConfig(args *types.CLIArgs) error {
	config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if args.DataFile == "" && config.DataFile != "" {
		args.DataFile = config.DataFile
	}
	if args.SyntheticCount == 0 && config.SyntheticCount > 0 {
		args.SyntheticCount = config.SyntheticCount
	}
	if !args.BairrosSet && len(config.Bairros) > 0 {
		args.Bairros = config.Bairros
		args.BairrosSet = true
	}
	if !args.TiposSet && len(config.Tipos) > 0 {
		args.Tipos = config.Tipos
		args.TiposSet = true
	}
	if args.Criticos == "" && config.Criticos != "" {
		args.Criticos = config.Criticos
	}
	if args.ConsumoMin == 0 && config.ConsumoMin > 0 {
		args.ConsumoMin = config.ConsumoMin
	}
	if args.ReportName == "" && config.ReportName != "" {
		args.ReportName = config.ReportName
	}
	if len(config.ReportType) > 0 && len(args.ReportType) == 1 && args.ReportType[0] == "csv" {
		args.ReportType = config.ReportType
	}
	if args.Dir == "" && config.Dir != "" {
		args.Dir = config.Dir
	}
	if config.Trend {
		args.Trend = true
	}

	return nil
}

// resolveCriteria transforma flags (ou respostas dos widgets
// interativos) nos critérios de filtragem. Flags ausentes selecionam
// todos os valores presentes no roster.
func (uc *DashboardUseCase) resolveCriteria(
	args *types.CLIArgs,
	criticos types.CriticalMode,
	clients []entity.ClientRecord,
) (types.FilterCriteria, error) {
	bairros := entity.DistinctBairros(clients)
	tipos := entity.DistinctTipos(clients)

	if args.Interactive {
		return uc.promptCriteria(bairros, tipos, clients)
	}

	criteria := types.FilterCriteria{
		Bairros:    bairros,
		Tipos:      tipos,
		Criticos:   criticos,
		ConsumoMin: args.ConsumoMin,
	}
	if args.BairrosSet {
		criteria.Bairros = args.Bairros
	}
	if args.TiposSet {
		criteria.Tipos = args.Tipos
	}
	return criteria, nil
}

// promptCriteria coleta os filtros de análise via widgets do terminal.
func (uc *DashboardUseCase) promptCriteria(
	bairros, tipos []string,
	clients []entity.ClientRecord,
) (types.FilterCriteria, error) {
	var criteria types.FilterCriteria
	var err error

	criteria.Bairros, err = uc.console.MultiSelect("Bairros", bairros)
	if err != nil {
		return criteria, err
	}

	criteria.Tipos, err = uc.console.MultiSelect("Tipos de Plano", tipos)
	if err != nil {
		return criteria, err
	}

	mode, err := uc.console.Select("Clientes críticos", []string{
		string(types.CriticosTodos),
		string(types.CriticosApenas),
		string(types.CriticosSem),
	})
	if err != nil {
		return criteria, err
	}
	criteria.Criticos = types.CriticalMode(mode)

	criteria.ConsumoMin, err = uc.console.PromptNumber(
		"Consumo mínimo (MB/s)", 0, 0, consumoSliderMax(clients))
	if err != nil {
		return criteria, err
	}

	return criteria, nil
}

// consumoSliderMax arredonda o maior consumo do roster para cima até o
// próximo múltiplo de 10, limite superior do controle de consumo
// mínimo. Roster vazio mantém o controle utilizável com limite 10.
func consumoSliderMax(clients []entity.ClientRecord) float64 {
	max := entity.MaxConsumo(clients)
	rounded := math.Ceil(max/10.0) * 10.0
	if rounded < 10 {
		return 10
	}
	return rounded
}

// renderHero exibe o painel principal com os três indicadores de topo.
func (uc *DashboardUseCase) renderHero(kpis entity.KPISummary) {
	consumoStr := "-"
	if kpis.TotalClientes > 0 {
		consumoStr = fmt.Sprintf("%.1f MB/s", kpis.ConsumoMedio)
	}

	content := fmt.Sprintf("%s\n%s\n\n%s   %s   %s",
		pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Negreiros NET"),
		pterm.FgGray.Sprint("Monitoramento de clientes e desempenho de internet em Petrolina"),
		pterm.FgLightGreen.Sprintf("%d clientes monitorados", kpis.TotalClientes),
		pterm.FgLightRed.Sprintf("%d clientes críticos", kpis.TotalCriticos),
		pterm.FgLightYellow.Sprintf("consumo médio: %s", consumoStr),
	)

	panel := pterm.DefaultBox.
		WithTitle("Dashboard Avançado").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(content)
	uc.console.Println(panel)
}

// renderKPIs exibe a tabela de KPIs estratégicos.
func (uc *DashboardUseCase) renderKPIs(kpis entity.KPISummary) {
	consumoMedio := "-"
	percCriticos := "0.0%"
	if kpis.TotalClientes > 0 {
		consumoMedio = fmt.Sprintf("%.1f", kpis.ConsumoMedio)
		percCriticos = fmt.Sprintf("%.1f%%", kpis.PercCriticos)
	}

	table := uc.console.CreateTable()
	table.AddColumn("Total de clientes")
	table.AddColumn("Clientes críticos")
	table.AddColumn("Críticos +50%")
	table.AddColumn("Consumo médio (MB/s)")
	table.AddColumn("Bairro com mais clientes")
	table.AddColumn("% de críticos")
	table.AddRow(
		fmt.Sprintf("%d", kpis.TotalClientes),
		pterm.FgLightRed.Sprintf("%d", kpis.TotalCriticos),
		pterm.FgRed.Sprintf("%d", kpis.TotalCriticos50),
		consumoMedio,
		kpis.BairroTop,
		percCriticos,
	)

	uc.console.Println(pterm.FgLightCyan.Sprint("KPIs Estratégicos"))
	uc.console.Print(table.Render())
	uc.console.Println()
}

// renderCharts exibe a distribuição por tipo de plano, os clientes por
// bairro e o top 20 de consumo.
func (uc *DashboardUseCase) renderCharts(filtered []entity.ClientRecord, bairrosSel []string) {
	if len(filtered) == 0 {
		uc.console.LogInfo("Ajuste os filtros para visualizar os gráficos.")
		return
	}

	// Distribuição por tipo de plano
	porTipo := map[string]int{}
	for _, c := range filtered {
		porTipo[c.TipoPlano]++
	}
	tipoBars := make([]types.BarDatum, 0, len(porTipo))
	for _, tipo := range sortedKeys(porTipo) {
		tipoBars = append(tipoBars, types.BarDatum{Label: tipo, Value: float64(porTipo[tipo])})
	}
	uc.console.DisplayBarChart("Distribuição por Tipo de Plano", tipoBars)

	// Clientes por bairro, com zero para bairros selecionados sem linhas
	porBairro := map[string]int{}
	for _, c := range filtered {
		porBairro[c.Bairro]++
	}
	selected := make([]string, len(bairrosSel))
	copy(selected, bairrosSel)
	sort.Strings(selected)
	bairroBars := make([]types.BarDatum, 0, len(selected))
	for _, bairro := range selected {
		bairroBars = append(bairroBars, types.BarDatum{Label: bairro, Value: float64(porBairro[bairro])})
	}
	uc.console.DisplayBarChart("Clientes por Bairro", bairroBars)

	// Top 20 clientes por consumo
	top := make([]entity.ClientRecord, len(filtered))
	copy(top, filtered)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].ConsumoAtualMBs > top[j].ConsumoAtualMBs
	})
	if len(top) > 20 {
		top = top[:20]
	}

	table := uc.console.CreateTable()
	table.AddColumn("ClienteID")
	table.AddColumn("Bairro")
	table.AddColumn("Plano (MB/s)")
	table.AddColumn("Consumo Atual (MB/s)")
	table.AddColumn("Crítico")
	for _, c := range top {
		critico := pterm.FgGreen.Sprint("não")
		if c.Excedeu {
			critico = pterm.FgLightRed.Sprint("sim")
		}
		table.AddRow(
			c.ClienteID,
			c.Bairro,
			fmt.Sprintf("%.0f", c.PlanoMBs),
			fmt.Sprintf("%.0f", c.ConsumoAtualMBs),
			critico,
		)
	}
	uc.console.Println(pterm.FgLightCyan.Sprint("Top 20 Clientes por Consumo"))
	uc.console.Print(table.Render())
	uc.console.Println()
}

// renderTrend sintetiza e exibe a tendência mensal por bairro. Quando o
// roster filtrado está vazio, a base completa mantém o gráfico útil.
func (uc *DashboardUseCase) renderTrend(filtered, all []entity.ClientRecord) {
	base := filtered
	if len(base) == 0 {
		base = all
	}

	points := uc.trends.Synthesize(BairroBases(base))
	if len(points) == 0 {
		uc.console.LogInfo("Sem dados suficientes para gerar a tendência mensal.")
		return
	}

	uc.console.Println(pterm.FgLightCyan.Sprint("Tendência de Consumo Mensal por Bairro"))
	for _, bairro := range trendBairros(points) {
		monthly := make([]types.MonthlyUsage, 0, len(entity.TrendMonths))
		for _, p := range points {
			if p.Bairro == bairro {
				monthly = append(monthly, types.MonthlyUsage{Month: p.Mes, MBs: p.ConsumoMedio})
			}
		}
		uc.console.DisplayTrendBars(bairro, monthly)
	}
}

// renderMap exibe o resumo geográfico por bairro: coordenadas,
// clientes, consumo médio e críticos. Bairros sem coordenadas na
// tabela ficam de fora.
func (uc *DashboardUseCase) renderMap(filtered []entity.ClientRecord) {
	if len(filtered) == 0 {
		uc.console.LogInfo("Sem dados para exibir no mapa.")
		return
	}

	type bairroAgg struct {
		lat, lon    float64
		clientes    int
		somaConsumo float64
		criticos    int
	}

	aggs := map[string]*bairroAgg{}
	for _, c := range filtered {
		if c.Lat == nil || c.Lon == nil {
			continue
		}
		agg, ok := aggs[c.Bairro]
		if !ok {
			agg = &bairroAgg{lat: *c.Lat, lon: *c.Lon}
			aggs[c.Bairro] = agg
		}
		agg.clientes++
		agg.somaConsumo += c.ConsumoAtualMBs
		if c.Excedeu {
			agg.criticos++
		}
	}

	if len(aggs) == 0 {
		uc.console.LogWarning("Os bairros filtrados não possuem coordenadas cadastradas.")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Bairro")
	table.AddColumn("Lat")
	table.AddColumn("Lon")
	table.AddColumn("Clientes")
	table.AddColumn("Consumo Médio (MB/s)")
	table.AddColumn("Críticos")

	bairros := make([]string, 0, len(aggs))
	for bairro := range aggs {
		bairros = append(bairros, bairro)
	}
	sort.Strings(bairros)

	for _, bairro := range bairros {
		agg := aggs[bairro]
		criticos := fmt.Sprintf("%d", agg.criticos)
		if agg.criticos > 0 {
			criticos = pterm.FgLightRed.Sprintf("%d", agg.criticos)
		}
		table.AddRow(
			bairro,
			fmt.Sprintf("%.4f", agg.lat),
			fmt.Sprintf("%.4f", agg.lon),
			fmt.Sprintf("%d", agg.clientes),
			fmt.Sprintf("%.1f", agg.somaConsumo/float64(agg.clientes)),
			criticos,
		)
	}

	uc.console.Println(pterm.FgLightCyan.Sprint("Mapa de Clientes por Bairro"))
	uc.console.Print(table.Render())
	uc.console.Println()
}

// renderTable exibe o roster filtrado, truncado para o terminal.
func (uc *DashboardUseCase) renderTable(filtered []entity.ClientRecord) {
	uc.console.Println(pterm.FgLightCyan.Sprint("Tabela de Dados Filtrados"))
	if len(filtered) == 0 {
		uc.console.LogInfo("Nenhum registro encontrado com os filtros selecionados.")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("ClienteID")
	table.AddColumn("Bairro")
	table.AddColumn("Plano (MB/s)")
	table.AddColumn("Tipo de Plano")
	table.AddColumn("Consumo Atual (MB/s)")
	table.AddColumn("Excedeu")
	table.AddColumn("Excedeu50")

	rows := filtered
	if len(rows) > maxTableRows {
		rows = rows[:maxTableRows]
	}
	for _, c := range rows {
		table.AddRow(
			c.ClienteID,
			c.Bairro,
			fmt.Sprintf("%.0f", c.PlanoMBs),
			c.TipoPlano,
			fmt.Sprintf("%.0f", c.ConsumoAtualMBs),
			boolCell(c.Excedeu),
			boolCell(c.Excedeu50),
		)
	}
	uc.console.Print(table.Render())
	if len(filtered) > maxTableRows {
		uc.console.LogInfo("Exibindo %d de %d registros; exporte o relatório para a lista completa.", maxTableRows, len(filtered))
	}
	uc.console.Println()
}

// exportReports grava os relatórios solicitados, registrando sucesso
// ou falha por formato.
func (uc *DashboardUseCase) exportReports(
	filtered []entity.ClientRecord,
	kpis entity.KPISummary,
	source entity.DataSource,
	args *types.CLIArgs,
) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(filtered, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(filtered, kpis, source, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportToXLSX(filtered, kpis, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(filtered, kpis, source, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		}
	}
}

func trendBairros(points []entity.TrendPoint) []string {
	seen := map[string]bool{}
	bairros := []string{}
	for _, p := range points {
		if !seen[p.Bairro] {
			seen[p.Bairro] = true
			bairros = append(bairros, p.Bairro)
		}
	}
	return bairros
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func boolCell(v bool) string {
	if v {
		return pterm.FgLightRed.Sprint("true")
	}
	return "false"
}
