package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"travelagency/internal/domain/models"
	"travelagency/internal/pricing"
	"travelagency/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders reservation documents as PDF.
type DocsService struct {
	RequestID string
}

// GenerateInvoice renders the invoice of a reservation and returns the PDF
// bytes with a download filename.
func (s DocsService) GenerateInvoice(res models.Reservation, trip models.Trip) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("reservation_id=%d", res.ID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("No Invoice  : INV-%d-%d", res.TripID, res.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Tanggal     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status      : "+safe(res.Status, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Perjalanan:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("%s (%s)", safe(trip.Title, "-"), safe(trip.Destination, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Berangkat %s, pulang %s", safe(trip.DepartureDate, "-"), safe(trip.ReturnDate, "-")))
	pdf.Ln(7)
	pdf.Ln(3)

	if rooms := roomLines(res); len(rooms) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Kamar:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range rooms {
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines := []struct {
		label string
		count int
		total float64
	}{
		{"Dewasa", res.Adults, res.TotalAdults},
		{"Anak (80%)", res.Children, res.TotalChildren},
		{"Bayi (30%)", res.Babies, res.TotalBabies},
	}
	for _, l := range lines {
		if l.count == 0 {
			continue
		}
		pdf.CellFormat(80, 6, fmt.Sprintf("%s x %d", l.label, l.count), "", 0, "", false, 0, "")
		pdf.CellFormat(0, 6, utils.FormatAmount(l.total), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 8, "Total", "T", 0, "", false, 0, "")
	pdf.CellFormat(0, 8, utils.FormatAmount(res.PrixCalculer), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	if note := strings.TrimSpace(res.Notes); note != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Catatan: "+note, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", res.ID, safeFilenamePart(trip.Title))
	return buf.Bytes(), filename, nil
}

// roomLines describes the booked rooms from the reservation alone; amounts
// come from the stored totals, which later trip edits do not change.
func roomLines(res models.Reservation) []string {
	units := [3]int{res.Room2, res.Room3, res.Room4}
	out := []string{}
	for i, c := range pricing.Capacities {
		if units[i] > 0 {
			out = append(out, fmt.Sprintf("%d x kamar %d orang", units[i], c))
		}
	}
	return out
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if r := []rune(s); len(r) > 40 {
		s = string(r[:40])
	}
	return s
}
