package services

import (
	"bytes"
	"testing"
	"time"

	"church-treasury/internal/models"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ExportServiceTestSuite struct {
	suite.Suite
	metrics    *recordingMetrics
	service    ExportServiceInterface
	aggregator TransactionAggregatorInterface
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.metrics = newRecordingMetrics()
	s.service = NewExportService(s.metrics)
	s.aggregator = NewTransactionAggregator()
}

func (s *ExportServiceTestSuite) open(buf *bytes.Buffer) *excelize.File {
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = f.Close() })
	return f
}

func (s *ExportServiceTestSuite) cell(f *excelize.File, sheet, axis string) string {
	value, err := f.GetCellValue(sheet, axis)
	s.Require().NoError(err)
	return value
}

// amount reads the stored number, ignoring the money display format
func (s *ExportServiceTestSuite) amount(f *excelize.File, sheet, axis string) string {
	value, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	s.Require().NoError(err)
	return value
}

func (s *ExportServiceTestSuite) TestExportReport_Layout() {
	ledger := workedExample()
	report := &models.GeneralReport{
		Period:     "2024",
		Totals:     s.aggregator.Totals(ledger),
		Monthly:    s.aggregator.MonthlySummary(ledger),
		Categories: s.aggregator.CategorySummary(ledger),
	}

	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportReport(report, &buf))

	f := s.open(&buf)
	s.Equal([]string{reportSheetName}, f.GetSheetList())

	s.Equal("Relatório Geral", s.cell(f, reportSheetName, "A1"))
	s.Equal("Período:", s.cell(f, reportSheetName, "A3"))
	s.Equal("2024", s.cell(f, reportSheetName, "B3"))
	s.Equal("Resumo Financeiro", s.cell(f, reportSheetName, "A5"))
	s.Equal("Total de Entradas", s.cell(f, reportSheetName, "A6"))
	s.Equal("150", s.amount(f, reportSheetName, "B6"))
	s.Equal("Saldo", s.cell(f, reportSheetName, "A8"))
	s.Equal("120", s.amount(f, reportSheetName, "B8"))

	s.Equal("Dados Mensais", s.cell(f, reportSheetName, "A10"))
	s.Equal("Mês", s.cell(f, reportSheetName, "A11"))
	s.Equal("Janeiro", s.cell(f, reportSheetName, "A12"))
	s.Equal("70", s.amount(f, reportSheetName, "D12"))
	s.Equal("Dezembro", s.cell(f, reportSheetName, "A23"))

	s.Equal("Dados por Categoria", s.cell(f, reportSheetName, "A25"))
	s.Equal("Total", s.cell(f, reportSheetName, "D26"))
	s.Equal(models.CategoryTithes, s.cell(f, reportSheetName, "A27"))
	s.Equal(models.CategoryOfferings, s.cell(f, reportSheetName, "A29"))

	s.Contains(s.metrics.counters, "export_generated.success")
	s.Contains(s.metrics.timings, "export")
}

func (s *ExportServiceTestSuite) TestExportTransactions_RowsAndTotals() {
	ledger := workedExample()
	totals := s.aggregator.Totals(ledger)

	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportTransactions(ledger, totals, "Janeiro/2024", &buf))

	f := s.open(&buf)
	s.Equal("Janeiro/2024", s.cell(f, transactionSheetName, "B2"))
	s.Equal("Data", s.cell(f, transactionSheetName, "A4"))
	s.Equal("05/01/2024", s.cell(f, transactionSheetName, "A5"))
	s.Equal("Entrada", s.cell(f, transactionSheetName, "B5"))
	s.Equal("Saída", s.cell(f, transactionSheetName, "B6"))
	s.Equal("-30", s.amount(f, transactionSheetName, "F6"))

	rows, err := f.GetRows(transactionSheetName, excelize.Options{RawCellValue: true})
	s.Require().NoError(err)
	last := rows[len(rows)-1]
	s.Equal("Saldo", last[0])
	s.Equal("120", last[1])
}

func (s *ExportServiceTestSuite) TestExportTransactions_Empty() {
	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportTransactions(nil, models.ZeroTotals(), "Todo o período", &buf))
	s.Positive(buf.Len())
}

func (s *ExportServiceTestSuite) TestFileName() {
	testCases := []struct {
		period   string
		expected string
	}{
		{"2024", "Relatorio_Geral_2024.xlsx"},
		{"Janeiro/2024", "Relatorio_Geral_Janeiro-2024.xlsx"},
		{"Todo o período", "Relatorio_Geral_Todo_o_período.xlsx"},
		{"2024 - Categoria: Água e Luz", "Relatorio_Geral_2024_-_Categoria_Água_e_Luz.xlsx"},
		{"", "Relatorio_Geral.xlsx"},
	}

	for _, tc := range testCases {
		s.Run(tc.period, func() {
			s.Equal(tc.expected, s.service.FileName("Relatorio_Geral", tc.period))
		})
	}
}

func (s *ExportServiceTestSuite) TestExportReport_DateIndependent() {
	report := &models.GeneralReport{
		Period:      "Todo o período",
		Totals:      models.ZeroTotals(),
		Monthly:     s.aggregator.MonthlySummary(nil),
		GeneratedAt: time.Now(),
	}

	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportReport(report, &buf))
	f := s.open(&buf)
	s.Equal("0", s.amount(f, reportSheetName, "B8"))
}
