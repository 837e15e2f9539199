package repository

import (
	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

// ExportRepository define a interface de exportação do roster filtrado.
// O CSV carrega somente as linhas (com colunas derivadas) para permitir
// reimportação; JSON, XLSX e PDF são relatórios e incluem os KPIs.
type ExportRepository interface {
	ExportToCSV(clients []entity.ClientRecord, filename string, outputDir string) (string, error)
	ExportToJSON(clients []entity.ClientRecord, kpis entity.KPISummary, source entity.DataSource, filename string, outputDir string) (string, error)
	ExportToXLSX(clients []entity.ClientRecord, kpis entity.KPISummary, filename string, outputDir string) (string, error)
	ExportToPDF(clients []entity.ClientRecord, kpis entity.KPISummary, source entity.DataSource, filename string, outputDir string) (string, error)
}
