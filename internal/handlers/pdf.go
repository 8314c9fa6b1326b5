package handlers

import (
	"bytes"
	"fmt"
	"strings"

	"boutique-storefront/internal/format"
	"boutique-storefront/internal/models"
)

// renderOrderPDF builds a single-page PDF receipt by hand. The document is
// deliberately minimal (one Helvetica text block), just enough for the back
// office download button to produce something a PDF viewer opens.
func renderOrderPDF(order models.Order) []byte {
	lines := []string{
		fmt.Sprintf("Commande %s", order.ID),
		fmt.Sprintf("Client : %s <%s>", order.UserFullName, order.UserEmail),
		fmt.Sprintf("Adresse : %s", order.ShippingAddress),
		fmt.Sprintf("Telephone : %s", order.Phone),
		fmt.Sprintf("Statut : %s", order.Status),
		"",
	}
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%d x %s (%s, %s) - %s",
			item.Quantity, item.Name, item.Size, item.Color, format.Price(item.Price)))
	}
	lines = append(lines, "", fmt.Sprintf("Total : %s", format.Price(order.TotalAmount)))

	var content bytes.Buffer
	content.WriteString("BT /F1 12 Tf 50 780 Td 16 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escapePDFText(line))
	}
	content.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func escapePDFText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return r.Replace(s)
}
