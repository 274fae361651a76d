package extraction

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/taxonomist/pkg/formatting"
	"github.com/JaimeStill/taxonomist/pkg/handlers"
	"github.com/JaimeStill/taxonomist/pkg/routes"
)

const pdfContentType = "application/pdf"

// Handler provides HTTP endpoints for PDF text extraction.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// UploadResult is the response body for a successful PDF upload.
type UploadResult struct {
	Filename string `json:"filename"`
	Document
	Success bool `json:"success"`
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "extraction"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for upload endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/upload",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/pdf", Handler: h.UploadPDF},
		},
	}
}

// UploadPDF accepts a multipart form with a single "file" field holding a PDF
// and responds with the extracted text.
func (h *Handler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadSize {
		h.fail(w, h.tooLarge())
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, h.tooLarge())
			return
		}
		h.fail(w, fmt.Errorf("%w: %w", ErrInvalidFile, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.fail(w, fmt.Errorf("%w: missing file field", ErrInvalidFile))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.fail(w, fmt.Errorf("%w: %w", ErrInvalidFile, err))
		return
	}

	if detectContentType(header.Header.Get("Content-Type"), data) != pdfContentType {
		h.fail(w, ErrNotPDF)
		return
	}

	doc, err := h.sys.Extract(r.Context(), data)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UploadResult{
		Filename: header.Filename,
		Document: *doc,
		Success:  true,
	})
}

func (h *Handler) tooLarge() error {
	return fmt.Errorf("%w: limit %s", ErrFileTooLarge, formatting.FormatBytes(h.maxUploadSize, 1))
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		if mediaType, _, ok := strings.Cut(header, ";"); ok {
			return strings.TrimSpace(mediaType)
		}
		return header
	}
	return http.DetectContentType(data)
}
