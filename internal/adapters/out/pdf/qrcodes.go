// Package pdf renders the printable table QR-code sheet: one A4 page per
// table, styled with the restaurant profile's colors.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"tableside/internal/core/domain/model/restaurant"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	qrSize     = 100.0
	qrPixels   = 512
)

// QRCodeGenerator renders table QR-code sheets for a restaurant profile.
type QRCodeGenerator struct{}

// NewQRCodeGenerator creates a generator.
func NewQRCodeGenerator() QRCodeGenerator {
	return QRCodeGenerator{}
}

// Generate renders one page per table and returns the PDF document.
// Each page carries the restaurant name, the table heading, the QR code
// encoding the table's payload and the optional custom footer line.
func (g QRCodeGenerator) Generate(info *restaurant.Info) ([]byte, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	bgR, bgG, bgB, err := parseHexColor(info.BackgroundColor())
	if err != nil {
		return nil, err
	}
	textR, textG, textB, err := parseHexColor(info.TextColor())
	if err != nil {
		return nil, err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	for table := 1; table <= info.Tables(); table++ {
		doc.AddPage()

		doc.SetFillColor(bgR, bgG, bgB)
		doc.Rect(0, 0, pageWidth, pageHeight, "F")
		doc.SetTextColor(textR, textG, textB)

		doc.SetFont("Helvetica", "B", 28)
		doc.SetXY(0, 30)
		doc.CellFormat(pageWidth, 14, info.Name(), "", 1, "C", false, 0, "")

		doc.SetFont("Helvetica", "", 20)
		doc.CellFormat(pageWidth, 12, fmt.Sprintf("Table %d", table), "", 1, "C", false, 0, "")

		png, qrErr := qrcode.Encode(info.QRPayload(table), qrcode.Medium, qrPixels)
		if qrErr != nil {
			return nil, fmt.Errorf("encode qr for table %d: %w", table, qrErr)
		}

		imageName := fmt.Sprintf("qr-table-%d", table)
		doc.RegisterImageOptionsReader(
			imageName,
			gofpdf.ImageOptions{ImageType: "PNG"},
			bytes.NewReader(png),
		)
		doc.ImageOptions(
			imageName,
			(pageWidth-qrSize)/2, 80, qrSize, qrSize,
			false,
			gofpdf.ImageOptions{ImageType: "PNG"},
			0, "",
		)

		if info.CustomText() != "" {
			doc.SetFont("Helvetica", "I", 14)
			doc.SetXY(0, 195)
			doc.CellFormat(pageWidth, 10, info.CustomText(), "", 1, "C", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err = doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// parseHexColor splits a #rrggbb string into RGB components. The profile
// validates the format, so errors here mean the value bypassed NewInfo.
func parseHexColor(color string) (r, g, b int, err error) {
	if len(color) != 7 || color[0] != '#' {
		return 0, 0, 0, fmt.Errorf("%q is not a #rrggbb color", color)
	}
	for i, dst := range []*int{&r, &g, &b} {
		v, parseErr := strconv.ParseUint(color[1+2*i:3+2*i], 16, 8)
		if parseErr != nil {
			return 0, 0, 0, fmt.Errorf("%q is not a #rrggbb color", color)
		}
		*dst = int(v)
	}
	return r, g, b, nil
}
