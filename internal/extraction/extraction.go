// Package extraction turns uploaded PDF documents into plain text suitable
// for a business description.
package extraction

import (
	"context"
	"log/slog"
	"strings"
)

// Document is the text recovered from a PDF.
type Document struct {
	PageCount int      `json:"pageCount"`
	Text      string   `json:"extractedText"`
	Keywords  []string `json:"businessKeywords"`
}

// System defines the public contract for PDF text extraction.
type System interface {
	Handler(maxUploadSize int64) *Handler
	Extract(ctx context.Context, data []byte) (*Document, error)
}

type extractor struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an extraction System from a finalized Config.
func New(cfg Config, logger *slog.Logger) System {
	return &extractor{
		cfg:    cfg,
		logger: logger.With("system", "extraction"),
	}
}

func (e *extractor) Handler(maxUploadSize int64) *Handler {
	return NewHandler(e, e.logger, maxUploadSize)
}

// Extract reads every page of the PDF, joins the shown text into a single
// whitespace-collapsed string and reports which business keywords appear.
func (e *extractor) Extract(ctx context.Context, data []byte) (*Document, error) {
	pages, err := e.readPages(ctx, data)
	if err != nil {
		return nil, err
	}

	text := collapseSpace(strings.Join(pages, " "))
	if len([]rune(text)) < e.cfg.MinTextLength {
		e.logger.Warn("insufficient text extracted", "pages", len(pages), "length", len(text))
		return nil, ErrInsufficientText
	}

	doc := &Document{
		PageCount: len(pages),
		Text:      text,
		Keywords:  matchKeywords(text, e.cfg.Keywords),
	}

	e.logger.Info("text extracted", "pages", doc.PageCount, "length", len(text), "keywords", len(doc.Keywords))
	return doc, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
