// Package pdftest builds small, valid PDF files in memory for tests. The
// generated documents use uncompressed content streams, with one text line
// per Td/Tj pair so text extraction yields the input lines verbatim, or
// with caller-supplied image streams embedded byte for byte.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// MinimalPDF builds a PDF with one page per element of pageTexts. Newlines
// within a page text become separate positioned text lines.
func MinimalPDF(pageTexts ...string) []byte {
	var buf bytes.Buffer
	n := len(pageTexts)
	fontNr := 3 + 2*n
	size := fontNr + 1
	offsets := make([]int, size)

	writeObj := func(nr int, body string) {
		offsets[nr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", nr, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), n))

	for i, text := range pageTexts {
		pageNr := 3 + 2*i
		contNr := pageNr + 1
		writeObj(pageNr, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontNr, contNr))

		stream := contentStream(text)
		offsets[contNr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			contNr, len(stream), stream)
	}

	writeObj(fontNr, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	return writeTrailer(&buf, offsets)
}

// JPEGPDF builds a PDF with one page per element of jpegs. Each page
// carries its stream as a DCTDecode image XObject named Im1 and draws it
// once at a known position (a 100x50 box at 72,600). The stream bytes are
// embedded untouched, so callers decide whether the image decodes.
func JPEGPDF(jpegs ...[]byte) []byte {
	var buf bytes.Buffer
	n := len(jpegs)
	size := 3 + 3*n
	offsets := make([]int, size)

	writeObj := func(nr int, body string) {
		offsets[nr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", nr, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+3*i))
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), n))

	for i, data := range jpegs {
		pageNr := 3 + 3*i
		contNr := pageNr + 1
		imgNr := pageNr + 2
		writeObj(pageNr, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /XObject << /Im1 %d 0 R >> >> /Contents %d 0 R >>",
			imgNr, contNr))

		stream := "q 100 0 0 50 72 600 cm /Im1 Do Q\n"
		offsets[contNr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			contNr, len(stream), stream)

		offsets[imgNr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /XObject /Subtype /Image "+
			"/Width 8 /Height 8 /ColorSpace /DeviceRGB /BitsPerComponent 8 "+
			"/Filter /DCTDecode /Length %d >>\nstream\n", imgNr, len(data))
		buf.Write(data)
		buf.WriteString("\nendstream\nendobj\n")
	}

	return writeTrailer(&buf, offsets)
}

func writeTrailer(buf *bytes.Buffer, offsets []int) []byte {
	size := len(offsets)
	xrefOff := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for nr := 1; nr < size; nr++ {
		fmt.Fprintf(buf, "%010d 00000 n \n", offsets[nr])
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		size, xrefOff)
	return buf.Bytes()
}

func contentStream(text string) string {
	var sb strings.Builder
	sb.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString("0 -16 Td\n")
		}
		fmt.Fprintf(&sb, "(%s) Tj\n", escape(line))
	}
	sb.WriteString("ET\n")
	return sb.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}
