package booking

import (
	"bytes"
	"fmt"

	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/phpdave11/gofpdf"
)

func buildTicketPDF(b *model.BookingEntity, t *model.TrainEntity) (*model.Ticket, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.PNR, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAILWAY E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", b.PNR),
		fmt.Sprintf("Train          : %s %s", t.TrainNo, t.Name),
		fmt.Sprintf("Route          : %s -> %s", t.Source, t.Destination),
		fmt.Sprintf("Travel date    : %s", b.TravelDate.Format(constant.TravelDateLayout)),
		fmt.Sprintf("Departure      : %s", orDash(t.Schedule["departure"])),
		fmt.Sprintf("Class          : %s", b.Class),
		fmt.Sprintf("Seats          : %d", b.SeatCount),
		fmt.Sprintf("Fare per seat  : INR %.2f", b.FarePerSeat),
		fmt.Sprintf("Total fare     : INR %.2f", b.TotalFare),
		fmt.Sprintf("Status         : %s / %s", b.Status, b.PaymentStatus),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	if t.Route != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Stops: "+t.Route, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &model.Ticket{Filename: fmt.Sprintf("ticket_%s.pdf", b.PNR), Content: buf.Bytes()}, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
