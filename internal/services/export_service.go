package services

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"church-treasury/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	reportSheetName      = "Relatório Geral"
	transactionSheetName = "Entradas e Saídas"
	exportDateLayout     = "02/01/2006"

	// built-in excelize number format "#,##0.00"
	moneyNumberFormat = 4
)

var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "",
	"*", "",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

type exportService struct {
	metrics MetricsRecorderInterface
}

// NewExportService creates the spreadsheet exporter
func NewExportService(metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{metrics: metrics}
}

// sheetWriter appends rows top to bottom on one sheet
type sheetWriter struct {
	file  *excelize.File
	sheet string
	row   int
	bold  int
	money int
}

func newSheetWriter(sheet string) (*sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumberFormat})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	return &sheetWriter{file: f, sheet: sheet, row: 1, bold: bold, money: money}, nil
}

func (w *sheetWriter) cell(col int) string {
	name, _ := excelize.CoordinatesToCellName(col, w.row)
	return name
}

// write puts the values on the next row. Decimal values are written as numbers with a money format.
func (w *sheetWriter) write(values ...interface{}) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		if amount, ok := v.(decimal.Decimal); ok {
			row[i] = amount.InexactFloat64()
			continue
		}
		row[i] = v
	}

	if err := w.file.SetSheetRow(w.sheet, w.cell(1), &row); err != nil {
		return err
	}

	for i, v := range values {
		if _, ok := v.(decimal.Decimal); ok {
			if err := w.file.SetCellStyle(w.sheet, w.cell(i+1), w.cell(i+1), w.money); err != nil {
				return err
			}
		}
	}

	w.row++
	return nil
}

// heading writes a bold row
func (w *sheetWriter) heading(values ...interface{}) error {
	if err := w.file.SetSheetRow(w.sheet, w.cell(1), &values); err != nil {
		return err
	}
	if err := w.file.SetCellStyle(w.sheet, w.cell(1), w.cell(len(values)), w.bold); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) blank() {
	w.row++
}

// ExportReport writes the general report as a single-sheet workbook: period, financial
// summary, monthly table and category table.
func (s *exportService) ExportReport(report *models.GeneralReport, out io.Writer) error {
	start := time.Now()

	w, err := newSheetWriter(reportSheetName)
	if err != nil {
		s.recordExport("report", "failed")
		return err
	}
	defer func() {
		if err := w.file.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	build := func() error {
		if err := w.heading("Relatório Geral"); err != nil {
			return err
		}
		w.blank()
		if err := w.write("Período:", report.Period); err != nil {
			return err
		}
		w.blank()

		if err := w.heading("Resumo Financeiro"); err != nil {
			return err
		}
		if err := w.write("Total de Entradas", report.Totals.Inflow); err != nil {
			return err
		}
		if err := w.write("Total de Saídas", report.Totals.Outflow); err != nil {
			return err
		}
		if err := w.write("Saldo", report.Totals.Balance); err != nil {
			return err
		}
		w.blank()

		if err := w.heading("Dados Mensais"); err != nil {
			return err
		}
		if err := w.heading("Mês", "Entradas", "Saídas", "Saldo"); err != nil {
			return err
		}
		for _, m := range report.Monthly {
			if err := w.write(m.Name, m.Inflow, m.Outflow, m.Balance); err != nil {
				return err
			}
		}
		w.blank()

		if err := w.heading("Dados por Categoria"); err != nil {
			return err
		}
		if err := w.heading("Categoria", "Entradas", "Saídas", "Total"); err != nil {
			return err
		}
		for _, c := range report.Categories {
			if err := w.write(c.Category, c.Inflow, c.Outflow, c.Net); err != nil {
				return err
			}
		}

		if err := w.file.SetColWidth(w.sheet, "A", "A", 24); err != nil {
			return err
		}
		return w.file.SetColWidth(w.sheet, "B", "D", 16)
	}

	if err := build(); err != nil {
		s.recordExport("report", "failed")
		return fmt.Errorf("failed to build report sheet: %w", err)
	}

	if err := w.file.Write(out); err != nil {
		s.recordExport("report", "failed")
		return fmt.Errorf("failed to write report workbook: %w", err)
	}

	s.recordExport("report", "success")
	s.metrics.RecordProcessingTime("export", time.Since(start))
	return nil
}

// ExportTransactions writes one row per ledger entry followed by the totals of the list
func (s *exportService) ExportTransactions(transactions []models.Transaction, totals models.PeriodTotals, period string, out io.Writer) error {
	start := time.Now()

	w, err := newSheetWriter(transactionSheetName)
	if err != nil {
		s.recordExport("transactions", "failed")
		return err
	}
	defer func() {
		if err := w.file.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	build := func() error {
		if err := w.heading("Entradas e Saídas"); err != nil {
			return err
		}
		if err := w.write("Período:", period); err != nil {
			return err
		}
		w.blank()

		if err := w.heading("Data", "Tipo", "Descrição", "Categoria", "Responsável", "Valor", "Observações"); err != nil {
			return err
		}
		for i := range transactions {
			txn := &transactions[i]
			if err := w.write(
				txn.Date.Format(exportDateLayout),
				kindLabel(txn.Kind),
				txn.Description,
				txn.Category,
				txn.Responsible,
				txn.SignedAmount(),
				txn.Notes,
			); err != nil {
				return err
			}
		}
		w.blank()

		if err := w.write("Total de Entradas", totals.Inflow); err != nil {
			return err
		}
		if err := w.write("Total de Saídas", totals.Outflow); err != nil {
			return err
		}
		if err := w.write("Saldo", totals.Balance); err != nil {
			return err
		}
		return w.file.SetColWidth(w.sheet, "A", "G", 18)
	}

	if err := build(); err != nil {
		s.recordExport("transactions", "failed")
		return fmt.Errorf("failed to build transactions sheet: %w", err)
	}

	if err := w.file.Write(out); err != nil {
		s.recordExport("transactions", "failed")
		return fmt.Errorf("failed to write transactions workbook: %w", err)
	}

	s.recordExport("transactions", "success")
	s.metrics.RecordProcessingTime("export", time.Since(start))
	return nil
}

// FileName builds a download name such as Relatorio_Geral_Janeiro-2024.xlsx
func (s *exportService) FileName(prefix, period string) string {
	name := fileNameReplacer.Replace(period)
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return prefix + ".xlsx"
	}
	return prefix + "_" + name + ".xlsx"
}

func (s *exportService) recordExport(kind, status string) {
	s.metrics.IncrementCounter("export_generated", map[string]string{
		"kind":   kind,
		"status": status,
	})
}

func kindLabel(kind string) string {
	if kind == models.EntryKindInflow {
		return "Entrada"
	}
	return "Saída"
}
