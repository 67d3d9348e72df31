package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"sitetrack/config"
	"sitetrack/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves project ledger downloads.
type ExportHandler struct {
	st  *store.Store
	cfg *config.Config
}

// NewExportHandler creates the export handler.
func NewExportHandler(st *store.Store, cfg *config.Config) *ExportHandler {
	return &ExportHandler{st: st, cfg: cfg}
}

// Export downloads a project's transactions as a spreadsheet. The
// format query selects xlsx (default) or csv.
func (h *ExportHandler) Export(c *gin.Context) {
	project, err := h.st.GetProject(parseID(c, "id"))
	if err != nil {
		renderNotFound(c, h.cfg, true, "No such project.")
		return
	}

	transactions, err := h.st.ListProjectTransactions(project.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load transactions")
		return
	}
	totalSpent, err := h.st.TotalSpent(project.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not compute total")
		return
	}

	if c.DefaultQuery("format", "xlsx") == "csv" {
		h.exportCSV(c, project.Name, transactions, totalSpent)
		return
	}
	h.exportXLSX(c, project.Name, transactions, totalSpent)
}

func (h *ExportHandler) exportCSV(c *gin.Context, projectName string, transactions []store.TransactionRow, totalSpent float64) {
	buf := new(bytes.Buffer)
	// BOM keeps Excel from mangling non-ASCII vendor names.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	if err := writer.Write([]string{"ID", "Date", "Vendor", "Amount", "Description"}); err != nil {
		c.String(http.StatusInternalServerError, "could not generate CSV")
		return
	}
	for _, tx := range transactions {
		row := []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.Format("2006-01-02"),
			tx.VendorName,
			fmt.Sprintf("%.2f", tx.Amount),
			tx.Description,
		}
		if err := writer.Write(row); err != nil {
			c.String(http.StatusInternalServerError, "could not generate CSV")
			return
		}
	}
	_ = writer.Write([]string{"", "", "Total", fmt.Sprintf("%.2f", totalSpent), ""})

	writer.Flush()
	if err := writer.Error(); err != nil {
		c.String(http.StatusInternalServerError, "could not generate CSV")
		return
	}

	filename := fmt.Sprintf("%s_transactions.csv", projectName)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) exportXLSX(c *gin.Context, projectName string, transactions []store.TransactionRow, totalSpent float64) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Transactions"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 40)

	headers := []string{"ID", "Date", "Vendor", "Amount", "Description"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, tx := range transactions {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.VendorName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Description)
	}

	summaryRow := len(transactions) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), totalSpent)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("%d transactions", len(transactions)))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("E%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("%s_transactions.xlsx", projectName)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "could not generate spreadsheet")
	}
}
