package gofpdf

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"

	"refrigeracao-miranda/go_backend/internal/domain/quote/render"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate lays the document out on an A4 page following the print view's
// section order. Core Helvetica with the cp1252 translator covers the
// Portuguese diacritics.
func (g *Generator) Generate(doc render.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Orçamento "+doc.Identification.Number, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Company header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(120, 8, tr(doc.Header.Name))
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(doc.Header.Title), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(120, 5, tr(doc.Header.Tagline))
	pdf.CellFormat(0, 5, tr("# "+doc.Identification.Number), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Customer block and quote details
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(95, 5, tr("INFORMAÇÕES DO CLIENTE"))
	pdf.CellFormat(0, 5, tr("DETALHES DO ORÇAMENTO"), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(95, 5, tr(doc.Customer.Name))
	pdf.CellFormat(0, 5, tr("Data: "+doc.Identification.Date), "", 1, "R", false, 0, "")
	pdf.Cell(95, 5, tr(doc.Customer.Address))
	pdf.CellFormat(0, 5, tr("Status: "+doc.Identification.StatusLabel), "", 1, "R", false, 0, "")
	pdf.Cell(95, 5, tr(doc.Customer.Phone))
	pdf.Ln(5)
	pdf.Cell(95, 5, tr(doc.Customer.Email))
	pdf.Ln(10)

	// Equipment block, only when the quote has one
	if doc.Device != nil {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.Cell(0, 5, tr("EQUIPAMENTO"))
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(95, 5, tr(fmt.Sprintf("Tipo: %s  Marca: %s", doc.Device.Type, doc.Device.Brand)))
		pdf.Ln(5)
		pdf.Cell(95, 5, tr(fmt.Sprintf("Modelo: %s  Nº de série: %s", doc.Device.Model, doc.Device.SerialNumber)))
		pdf.Ln(5)
		pdf.Cell(95, 5, tr(fmt.Sprintf("Voltagem: %s", doc.Device.Voltage)))
		pdf.Ln(8)
	}

	// Item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(18, 7, tr("Código"))
	pdf.Cell(82, 7, tr("Descrição"))
	pdf.CellFormat(20, 7, tr("Quant."), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, tr("Valor Unit."), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Items {
		pdf.Cell(18, 6, tr(row.Code))
		pdf.Cell(82, 6, tr(trim(row.Description, 48)))
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", row.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, tr(row.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, tr(row.Total), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Cost summary
	summary := [][2]string{
		{"Peças:", doc.Summary.PartsCost},
		{"Mão de obra:", doc.Summary.LaborCost},
	}
	if doc.Summary.WaterproofingCost != "" {
		summary = append(summary, [2]string{"Impermeabilização:", doc.Summary.WaterproofingCost})
	}
	if doc.Summary.TransportCost != "" {
		summary = append(summary, [2]string{"Transporte:", doc.Summary.TransportCost})
	}
	summary = append(summary, [2]string{"Subtotal:", doc.Summary.Subtotal})
	if doc.Summary.Tax != "" {
		summary = append(summary, [2]string{doc.Summary.TaxLabel + ":", doc.Summary.Tax})
	}
	for _, line := range summary {
		pdf.CellFormat(155, 6, tr(line[0]), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, tr(line[1]), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(155, 7, "Total:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, tr(doc.Summary.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Notes
	if doc.Notes != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.Cell(0, 5, tr("OBSERVAÇÕES"))
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(doc.Notes), "", "L", false)
		pdf.Ln(4)
	}

	// Boilerplate footer
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(doc.Footer.PaymentTerms), "", "L", false)
	pdf.MultiCell(0, 5, tr(doc.Footer.Warranty), "", "L", false)
	pdf.Ln(6)
	pdf.MultiCell(0, 5, tr(doc.Footer.Signature), "", "L", false)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, tr(doc.Footer.CompanyLine), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, tr(doc.Footer.AddressLine), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, tr(doc.Footer.ContactLine), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
