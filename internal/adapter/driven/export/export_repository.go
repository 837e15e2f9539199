package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
	"github.com/negreirosnet/netops-dashboard-go/internal/domain/repository"
)

// rosterHeaders são as colunas do roster exportado: as cinco colunas de
// entrada mais as derivadas, na ordem em que o dashboard as exibe.
var rosterHeaders = []string{
	"ClienteID", "Bairro", "Plano (MB/s)", "Tipo de Plano",
	"Consumo Atual (MB/s)", "Excedeu", "Excedeu50", "Lat", "Lon",
}

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava o roster filtrado em CSV UTF-8 com cabeçalho. O
// arquivo reimporta no loader com as mesmas linhas e valores.
func (r *ExportRepositoryImpl) ExportToCSV(clients []entity.ClientRecord, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(rosterHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, c := range clients {
		record := []string{
			c.ClienteID,
			c.Bairro,
			formatMBs(c.PlanoMBs),
			c.TipoPlano,
			formatMBs(c.ConsumoAtualMBs),
			strconv.FormatBool(c.Excedeu),
			strconv.FormatBool(c.Excedeu50),
			formatCoord(c.Lat),
			formatCoord(c.Lon),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// rosterReport é o shape do relatório JSON: KPIs, origem e linhas.
type rosterReport struct {
	Source  entity.DataSource     `json:"source"`
	KPIs    entity.KPISummary     `json:"kpis"`
	Clients []entity.ClientRecord `json:"clients"`
}

func (r *ExportRepositoryImpl) ExportToJSON(clients []entity.ClientRecord, kpis entity.KPISummary, source entity.DataSource, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rosterReport{Source: source, KPIs: kpis, Clients: clients}); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToXLSX grava uma planilha com a aba de clientes e uma aba de
// resumo com os KPIs.
func (r *ExportRepositoryImpl) ExportToXLSX(clients []entity.ClientRecord, kpis entity.KPISummary, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Clientes"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("error renaming sheet: %w", err)
	}

	for i, header := range rosterHeaders {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("error resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cellRef, header); err != nil {
			return "", fmt.Errorf("error writing header cell: %w", err)
		}
	}

	for rowIdx, c := range clients {
		values := []interface{}{
			c.ClienteID, c.Bairro, c.PlanoMBs, c.TipoPlano, c.ConsumoAtualMBs,
			c.Excedeu, c.Excedeu50,
		}
		if c.Lat != nil {
			values = append(values, *c.Lat)
		} else {
			values = append(values, "")
		}
		if c.Lon != nil {
			values = append(values, *c.Lon)
		} else {
			values = append(values, "")
		}

		for colIdx, value := range values {
			cellRef, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return "", fmt.Errorf("error resolving cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cellRef, value); err != nil {
				return "", fmt.Errorf("error writing cell: %w", err)
			}
		}
	}

	const resumo = "Resumo"
	if _, err := f.NewSheet(resumo); err != nil {
		return "", fmt.Errorf("error creating summary sheet: %w", err)
	}
	summary := [][]interface{}{
		{"Total de clientes", kpis.TotalClientes},
		{"Clientes críticos", kpis.TotalCriticos},
		{"Críticos +50%", kpis.TotalCriticos50},
		{"Consumo médio (MB/s)", kpis.ConsumoMedio},
		{"Bairro com mais clientes", kpis.BairroTop},
		{"% de críticos", kpis.PercCriticos},
	}
	for rowIdx, pair := range summary {
		for colIdx, value := range pair {
			cellRef, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return "", fmt.Errorf("error resolving summary cell: %w", err)
			}
			if err := f.SetCellValue(resumo, cellRef, value); err != nil {
				return "", fmt.Errorf("error writing summary cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF grava o relatório do dashboard: cabeçalho, KPIs e a
// tabela do roster filtrado.
func (r *ExportRepositoryImpl) ExportToPDF(clients []entity.ClientRecord, kpis entity.KPISummary, source entity.DataSource, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{14, 98, 81}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 14, tr("  Negreiros NET - Monitoramento de Clientes"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Fonte dos dados: %s", source)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr("KPIs Estratégicos"))
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	consumoMedio := "-"
	percCriticos := "0.0%"
	if kpis.TotalClientes > 0 {
		consumoMedio = fmt.Sprintf("%.1f MB/s", kpis.ConsumoMedio)
		percCriticos = fmt.Sprintf("%.1f%%", kpis.PercCriticos)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	kpiLines := []string{
		fmt.Sprintf("Total de clientes: %d", kpis.TotalClientes),
		fmt.Sprintf("Clientes críticos: %d", kpis.TotalCriticos),
		fmt.Sprintf("Críticos +50%%: %d", kpis.TotalCriticos50),
		fmt.Sprintf("Consumo médio: %s", consumoMedio),
		fmt.Sprintf("Bairro com mais clientes: %s", kpis.BairroTop),
		fmt.Sprintf("%% de críticos: %s", percCriticos),
	}
	for _, line := range kpiLines {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr("Tabela de Dados Filtrados"))
	pdf.Ln(7)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	colWidths := []float64{20, 38, 24, 28, 32, 16, 16, 16}
	tableHeaders := []string{
		"ClienteID", "Bairro", "Plano", "Tipo", "Consumo", "Exc.", "Exc.50", "Lat/Lon",
	}

	drawTableHeader := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range tableHeaders {
			pdf.CellFormat(colWidths[i], 6, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}
	drawTableHeader()

	for _, c := range clients {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			drawTableHeader()
		}
		latLon := "-"
		if c.Lat != nil && c.Lon != nil {
			latLon = fmt.Sprintf("%.2f/%.2f", *c.Lat, *c.Lon)
		}
		cells := []string{
			c.ClienteID,
			c.Bairro,
			formatMBs(c.PlanoMBs),
			c.TipoPlano,
			formatMBs(c.ConsumoAtualMBs),
			strconv.FormatBool(c.Excedeu),
			strconv.FormatBool(c.Excedeu50),
			latLon,
		}
		for i, cellText := range cells {
			pdf.CellFormat(colWidths[i], 6, tr(cellText), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Negreiros NET Dashboard | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename monta o caminho do relatório com timestamp, criando
// o diretório de saída quando necessário.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// formatMBs imprime valores de MB/s sem zeros à direita.
func formatMBs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
