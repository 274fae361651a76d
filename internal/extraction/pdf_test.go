package extraction_test

import (
	"bytes"
	"fmt"
	"strings"
)

// pdfWriter numbers objects in the order they are added and records their
// offsets so bytes can emit a valid cross-reference table.
type pdfWriter struct {
	buf     bytes.Buffer
	offsets []int
}

func newPDFWriter() *pdfWriter {
	w := &pdfWriter{}
	w.buf.WriteString("%PDF-1.4\n")
	return w
}

func (w *pdfWriter) obj(body string) {
	w.offsets = append(w.offsets, w.buf.Len())
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", len(w.offsets), body)
}

func (w *pdfWriter) stream(content string) {
	w.obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
}

func (w *pdfWriter) bytes() []byte {
	xref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n0000000000 65535 f \n", len(w.offsets)+1)
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(w.offsets)+1, xref)
	return w.buf.Bytes()
}

// buildPDF assembles a minimal single-font PDF with one page per entry,
// each page showing its text with a Tj operator.
func buildPDF(pages ...string) []byte {
	w := newPDFWriter()

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	w.obj("<< /Type /Catalog /Pages 2 0 R >>")
	w.obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	w.obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pages {
		w.obj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i,
		))
		w.stream(fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escapeLiteral(text)))
	}

	return w.bytes()
}

// buildIdentityPDF assembles a one-page PDF whose text is shown with a
// Type0 font in Identity-H encoding. Glyph ids are two-byte codes that
// only the font's ToUnicode CMap maps back to characters, the layout
// word processors and browsers produce when exporting to PDF.
func buildIdentityPDF(text string) []byte {
	gids := make(map[rune]int)
	var order []rune
	var shown strings.Builder
	for _, r := range text {
		gid, ok := gids[r]
		if !ok {
			gid = len(order) + 1
			gids[r] = gid
			order = append(order, r)
		}
		fmt.Fprintf(&shown, "%04X", gid)
	}

	var cmap strings.Builder
	cmap.WriteString("/CIDInit /ProcSet findresource begin\n12 dict begin\nbegincmap\n")
	cmap.WriteString("/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def\n")
	cmap.WriteString("/CMapName /Adobe-Identity-UCS def\n/CMapType 2 def\n")
	cmap.WriteString("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n")
	for start := 0; start < len(order); start += 100 {
		chunk := order[start:min(start+100, len(order))]
		fmt.Fprintf(&cmap, "%d beginbfchar\n", len(chunk))
		for i, r := range chunk {
			fmt.Fprintf(&cmap, "<%04X> <%04X>\n", start+i+1, r)
		}
		cmap.WriteString("endbfchar\n")
	}
	cmap.WriteString("endcmap\nCMapName currentdict /CMap defineresource pop\nend\nend")

	w := newPDFWriter()
	w.obj("<< /Type /Catalog /Pages 2 0 R >>")
	w.obj("<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	w.obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 8 0 R >>")
	w.obj("<< /Type /Font /Subtype /Type0 /BaseFont /AcmeSans /Encoding /Identity-H /DescendantFonts [5 0 R] /ToUnicode 7 0 R >>")
	w.obj("<< /Type /Font /Subtype /CIDFontType2 /BaseFont /AcmeSans /CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >> /FontDescriptor 6 0 R /DW 500 /CIDToGIDMap /Identity >>")
	w.obj("<< /Type /FontDescriptor /FontName /AcmeSans /Flags 32 /FontBBox [0 -200 1000 900] /ItalicAngle 0 /Ascent 900 /Descent -200 /CapHeight 700 /StemV 80 >>")
	w.stream(cmap.String())
	w.stream(fmt.Sprintf("BT /F1 12 Tf 72 720 Td <%s> Tj ET", shown.String()))

	return w.bytes()
}

func escapeLiteral(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
