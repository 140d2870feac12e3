package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"transtour/internal/domain"
	"transtour/internal/repositories"
	"transtour/internal/utils"
)

// DocsService renders order documents. Loader is injectable so tests can feed
// fixed data without a database.
type DocsService struct {
	Orders repositories.OrderRepository
	Loader func(orderID int64) (repositories.OrderDetail, error)
}

func (s DocsService) load(orderID int64) (repositories.OrderDetail, error) {
	if s.Loader != nil {
		return s.Loader(orderID)
	}
	return s.Orders.GetByID(orderID)
}

// GenerateInvoice builds the order invoice PDF and a safe filename.
func (s DocsService) GenerateInvoice(orderID int64) ([]byte, string, error) {
	detail, err := s.load(orderID)
	if err != nil {
		return nil, "", err
	}
	if detail.Order.ID == 0 {
		return nil, "", domain.NotFoundError{Resource: "order"}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", detail.Order.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "No Invoice  : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Tanggal     : "+utils.FormatDateTime(utils.NowUTC()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Ditagihkan kepada:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Nama   : %s", safe(detail.Order.FullName, "-")),
		fmt.Sprintf("No HP  : %s", safe(detail.Order.PhoneNumber, "-")),
		fmt.Sprintf("Email  : %s", safe(detail.Order.Email, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Jenis Order  : %s", detail.Order.OrderType))
	pdf.Ln(7)
	if tr := detail.Transportation; tr != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Jumlah Kendaraan : %d", tr.VehicleCount))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Total Jarak      : %.1f km", tr.TotalDistanceMeters/1000))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Harga Dasar      : %s", utils.FormatRupiah(tr.BasePrice)))
		pdf.Ln(7)
		if tr.InterTripCharges > 0 {
			pdf.Cell(0, 7, fmt.Sprintf("Biaya Antar Hari : %s", utils.FormatRupiah(tr.InterTripCharges)))
			pdf.Ln(7)
		}
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("TOTAL : %s", utils.FormatRupiah(detail.Order.TotalPrice)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Pembayaran dianggap sah setelah divalidasi admin. Simpan invoice ini sebagai bukti pemesanan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", detail.Order.ID, safeFilenamePart(detail.Order.FullName))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "order"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
