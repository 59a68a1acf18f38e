package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportService writes a stats report as a downloadable file
type ExportService struct {
	statsSvc *StatsService
	now      func() time.Time
}

func NewExportService(statsSvc *StatsService) *ExportService {
	return &ExportService{statsSvc: statsSvc, now: time.Now}
}

// Export aggregates with filters and encodes the report in format.
// It returns the file content, its file name and its content type.
func (s *ExportService) Export(ctx context.Context, filters models.StatsFilters, format string) ([]byte, string, string, error) {
	switch format {
	case FormatCSV, FormatXLSX, FormatPDF:
	default:
		return nil, "", "", fmt.Errorf("%w: format d'export inconnu: %s", ErrValidation, format)
	}

	report, err := s.statsSvc.Aggregate(ctx, filters)
	if err != nil {
		return nil, "", "", err
	}

	var data []byte
	var contentType string
	switch format {
	case FormatCSV:
		data, err = s.ExportCSV(report)
		contentType = "text/csv"
	case FormatXLSX:
		data, err = s.ExportXLSX(report)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		data, err = s.ExportPDF(report)
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("recouvrements_%s.%s", s.now().Format("2006-01-02"), format)
	return data, filename, contentType, nil
}

func summaryRows(r *models.StatsReport) [][]string {
	return [][]string{
		{"Inscrits (filtre)", fmt.Sprintf("%d", r.TotalEnrolled)},
		{"Recouvrements (filtre)", fmt.Sprintf("%d", r.TotalRecords)},
		{"Inscrits (global)", fmt.Sprintf("%d", r.GlobalEnrolled)},
		{"Recouvrements (global)", fmt.Sprintf("%d", r.GlobalRecords)},
		{"Total frais", fmt.Sprintf("%d", r.TotalFees)},
		{"Total payé", fmt.Sprintf("%d", r.TotalPaid)},
		{"Total reste", fmt.Sprintf("%d", r.TotalOutstanding)},
		{"Pourcentage payé", fmt.Sprintf("%.1f%%", r.PaidPercentage)},
		{"Pourcentage reste", fmt.Sprintf("%.1f%%", r.OutstandingPercent)},
	}
}

func (s *ExportService) ExportCSV(report *models.StatsReport) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	// Header
	_ = writer.Write([]string{"Statistiques des recouvrements", s.now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Résumé"})
	_ = writer.Write([]string{"Indicateur", "Valeur"})
	for _, row := range summaryRows(report) {
		_ = writer.Write(row)
	}
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Par classe"})
	_ = writer.Write([]string{"Classe", "Payé", "Reste", "Total"})
	for _, c := range report.ByClass {
		_ = writer.Write([]string{c.Name, fmt.Sprintf("%d", c.Paid), fmt.Sprintf("%d", c.Outstanding), fmt.Sprintf("%d", c.Total)})
	}
	_ = writer.Write([]string{""})

	writeCounts := func(title, column string, groups []models.GroupCount) {
		_ = writer.Write([]string{title})
		_ = writer.Write([]string{column, "Élèves ayant payé"})
		for _, g := range groups {
			_ = writer.Write([]string{g.Name, fmt.Sprintf("%d", g.Total)})
		}
		_ = writer.Write([]string{""})
	}
	writeCounts("Par niveau", "Niveau", report.ByLevel)
	writeCounts("Par option", "Option", report.ByTrack)

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) ExportXLSX(report *models.StatsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Statistiques"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	_ = f.SetCellValue(sheet, "A1", "Statistiques des recouvrements")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	row := 3
	set := func(col string, value interface{}) {
		_ = f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), value)
	}
	title := func(text string) {
		set("A", text)
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)
		row++
	}

	title("Résumé")
	for _, r := range summaryRows(report) {
		set("A", r[0])
		set("B", r[1])
		row++
	}

	row++
	title("Par classe")
	set("A", "Classe")
	set("B", "Payé")
	set("C", "Reste")
	set("D", "Total")
	row++
	for _, c := range report.ByClass {
		set("A", c.Name)
		set("B", c.Paid)
		set("C", c.Outstanding)
		set("D", c.Total)
		row++
	}

	for _, section := range []struct {
		title  string
		groups []models.GroupCount
	}{
		{"Par niveau", report.ByLevel},
		{"Par option", report.ByTrack},
	} {
		row++
		title(section.title)
		for _, g := range section.groups {
			set("A", g.Name)
			set("B", g.Total)
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) ExportPDF(report *models.StatsReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr("Statistiques des recouvrements"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, tr("Résumé"))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, r := range summaryRows(report) {
		pdf.Cell(60, 8, tr(r[0]+" :"))
		pdf.Cell(40, 8, tr(r[1]))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Par classe")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	for _, h := range []string{"Classe", "Payé", "Reste", "Total"} {
		pdf.CellFormat(45, 7, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, c := range report.ByClass {
		pdf.CellFormat(45, 7, tr(c.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%d", c.Paid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%d", c.Outstanding), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%d", c.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	for _, section := range []struct {
		title  string
		groups []models.GroupCount
	}{
		{"Par niveau", report.ByLevel},
		{"Par option", report.ByTrack},
	} {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, section.title)
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, g := range section.groups {
			pdf.Cell(60, 8, tr(g.Name+" :"))
			pdf.Cell(40, 8, fmt.Sprintf("%d", g.Total))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
