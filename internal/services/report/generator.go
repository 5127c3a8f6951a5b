package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/brushhq/paintdesk/internal/models"
)

// JobSummary bundles everything the one-page job PDF needs
type JobSummary struct {
	Job          models.Job
	Customer     *models.Customer
	ExpenseTotal float64
	PhotoCount   int
	WorkerCount  int
}

// GenerateJobPDF renders a one-page job summary. A QR code in the corner
// deep-links back to the job in the client app.
func GenerateJobPDF(s JobSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header: job code + name
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s  %s", s.Job.JobCode, s.Job.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, s.Job.Category, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// QR deep link, top right
	qrContent := fmt.Sprintf("paintdesk://jobs/%d", s.Job.ID)
	qrPng, err := qrcode.Encode(qrContent, qrcode.Low, 256)
	if err != nil {
		return nil, err
	}
	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	_ = pdf.RegisterImageOptionsReader("qr_job", imgOptions, bytes.NewReader(qrPng))
	pdf.ImageOptions("qr_job", 170, 12, 25, 25, false, imgOptions, 0, "")

	row := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 7, value, "", "L", false)
	}

	if s.Customer != nil {
		row("Customer", s.Customer.Name)
		if s.Customer.Phone != "" {
			row("Phone", s.Customer.Phone)
		}
	}
	if s.Job.Location != "" {
		row("Location", s.Job.Location)
	}
	row("Status", s.Job.Status)
	if s.Job.StartDate != "" {
		period := s.Job.StartDate
		if s.Job.EndDate != "" {
			period += " - " + s.Job.EndDate
		}
		row("Period", period)
	}
	if s.Job.Description != "" {
		row("Description", s.Job.Description)
	}
	pdf.Ln(4)

	// Financials
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Financials", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	amount := func(label string, v float64) {
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", v), "", 1, "R", false, 0, "")
	}
	amount("Quoted", s.Job.QuotedAmount.Float64())
	amount("Agreed", s.Job.AgreedAmount.Float64())
	amount("Paid", s.Job.PaidAmount.Float64())
	amount("Outstanding", s.Job.AgreedAmount.Float64()-s.Job.PaidAmount.Float64())
	amount("Expenses", s.ExpenseTotal)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d photos, %d workers assigned", s.PhotoCount, s.WorkerCount), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
