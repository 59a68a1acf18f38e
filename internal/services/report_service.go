package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
)

//go:embed templates/*.html
var templateFS embed.FS

var receiptTemplate = template.Must(template.ParseFS(templateFS, "templates/receipt.html"))

// ReportService renders printable documents
type ReportService struct {
	recordRepo repository.PaymentRecordRepository
	schoolName string
	now        func() time.Time
}

func NewReportService(recordRepo repository.PaymentRecordRepository, schoolName string) *ReportService {
	return &ReportService{
		recordRepo: recordRepo,
		schoolName: schoolName,
		now:        time.Now,
	}
}

// ReceiptInstallment is one paid slot on a receipt
type ReceiptInstallment struct {
	Index  int
	Date   string
	Amount string
}

// ReceiptView is the data printed on a payment receipt
type ReceiptView struct {
	SchoolName       string
	Number           string
	IssuedAt         string
	StudentName      string
	Matricule        string
	ClassLabel       string
	YearLabel        string
	Guardian         string
	GuardianContact  string
	RegistrationKind string
	Discount         string
	Installments     []ReceiptInstallment
	Fee              string
	TotalPaid        string
	Outstanding      string
	TotalPaidWords   string
}

// BuildReceipt collects the printable fields of record
func (s *ReportService) BuildReceipt(record *models.PaymentRecord) ReceiptView {
	resp := record.ToResponse()
	view := ReceiptView{
		SchoolName:       s.schoolName,
		Number:           fmt.Sprintf("REC-%06d", record.ID),
		IssuedAt:         s.now().Format("02/01/2006"),
		StudentName:      resp.StudentName,
		Matricule:        resp.Matricule,
		ClassLabel:       resp.ClassLabel,
		YearLabel:        resp.YearLabel,
		Guardian:         deref(record.GuardianName),
		GuardianContact:  deref(record.GuardianContact),
		RegistrationKind: registrationKindLabel(record.RegistrationKind),
		Discount:         record.DiscountValue().StringFixed(2),
		Fee:              "-",
		TotalPaid:        formatAmount(record.TotalPaid),
		Outstanding:      formatAmount(record.Outstanding()),
		TotalPaidWords:   AmountToWords(record.TotalPaid),
	}
	if record.DiscountedFee != nil {
		view.Fee = formatAmount(*record.DiscountedFee)
	}

	for i, in := range record.Installments() {
		if in.Amount == nil || in.Amount.IsZero() {
			continue
		}
		date := "-"
		if in.Date != nil {
			date = in.Date.Format("02/01/2006")
		}
		view.Installments = append(view.Installments, ReceiptInstallment{
			Index:  i + 1,
			Date:   date,
			Amount: formatAmount(*in.Amount),
		})
	}
	return view
}

// RenderReceiptHTML executes the receipt template for record
func (s *ReportService) RenderReceiptHTML(record *models.PaymentRecord) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, s.BuildReceipt(record)); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return &buf, nil
}

// GenerateReceiptPDF renders the receipt of payment record id as PDF
func (s *ReportService) GenerateReceiptPDF(ctx context.Context, id uint) (*bytes.Buffer, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	html, err := s.RenderReceiptHTML(record)
	if err != nil {
		return nil, err
	}
	return htmlToPDF(html)
}

func htmlToPDF(html *bytes.Buffer) (*bytes.Buffer, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA5)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	page.Encoding.Set("utf-8")
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}
	return pdfg.Buffer(), nil
}

func registrationKindLabel(kind string) string {
	switch kind {
	case models.RegistrationKindNew:
		return "Inscription"
	case models.RegistrationKindRenewal:
		return "Réinscription"
	}
	return "Autre"
}

// formatAmount prints a whole-unit amount with space thousands separators
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
