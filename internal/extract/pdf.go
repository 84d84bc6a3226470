package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/common"
)

type Config struct {
	MaxPages  int    // 0 = no limit
	Separator string // appended after every text fragment; default " "
}

// PDFExtractor adapts ledongthuc/pdf text runs into the fragment stream and folds it.
type PDFExtractor struct {
	cfg    Config
	logger *slog.Logger
}

func NewPDFExtractor(cfg Config, logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Separator == "" {
		cfg.Separator = " "
	}
	return &PDFExtractor{cfg: cfg, logger: logger}
}

// Extract returns the document's text or an extraction error; never partial text.
func (e *PDFExtractor) Extract(ctx context.Context, doc RawDocument) (text string, err error) {
	log := common.LoggerFromContext(ctx, e.logger)
	start := time.Now()

	if f := constants.MapMediaTypeToFormat(doc.MediaType); f != constants.PDF {
		return "", common.ExtractionError(fmt.Sprintf("unsupported media type %q", doc.MediaType), nil)
	}

	// the parser panics on some malformed content streams
	defer func() {
		if r := recover(); r != nil {
			log.Error("extract.pdf.panic", "filename", doc.Filename, "panic", r)
			text, err = "", common.ExtractionError("malformed PDF", fmt.Errorf("%v", r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		log.Warn("extract.pdf.open_failed", "filename", doc.Filename, "bytes", len(doc.Data), "error", err)
		return "", common.ExtractionError("invalid PDF", err)
	}
	pages := r.NumPage()
	if pages == 0 {
		return "", common.ExtractionError("PDF has no pages", nil)
	}
	if e.cfg.MaxPages > 0 && pages > e.cfg.MaxPages {
		return "", common.ExtractionError(fmt.Sprintf("PDF has too many pages (%d), max allowed is %d", pages, e.cfg.MaxPages), nil)
	}

	text, err = Fold(PDFFragments(r), e.cfg.Separator)
	if err != nil {
		log.Warn("extract.pdf.parse_failed", "filename", doc.Filename, "error", err)
		return "", common.ExtractionError("malformed PDF content", err)
	}

	log.Info("extract.pdf.ok",
		"filename", doc.Filename,
		"pages", pages,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// PDFFragments streams every text run of r, page by page, top row first.
func PDFFragments(r *pdf.Reader) Fragments {
	return func(yield func(Fragment, error) bool) {
		n := r.NumPage()
		for i := 1; i <= n; i++ {
			p := r.Page(i)
			if p.V.IsNull() {
				continue
			}
			rows, err := p.GetTextByRow()
			if err != nil {
				yield(Fragment{}, fmt.Errorf("page %d: %w", i, err))
				return
			}
			for _, row := range rows {
				for _, t := range row.Content {
					if !yield(Fragment{Page: i, Text: t.S}, nil) {
						return
					}
				}
			}
		}
	}
}
