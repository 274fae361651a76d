package extraction

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	api.DisableConfigDir()
}

// readPages returns the plain text of each page in document order.
// pdfcpu reads the cross-reference table and page tree; ledongthuc/pdf
// decodes shown text through each font's encoding and ToUnicode map.
// A page whose content cannot be decoded contributes no text.
func (e *extractor) readPages(ctx context.Context, data []byte) ([]string, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	doc, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadablePDF, err)
	}
	if err := doc.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadablePDF, err)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadablePDF, err)
	}

	pages := make([]string, 0, doc.PageCount)
	for i := 1; i <= doc.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("page text unreadable", "page", i, "error", err)
			text = ""
		}
		pages = append(pages, text)
	}

	return pages, nil
}
