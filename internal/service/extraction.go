package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/domain"
)

// snippetSeparator joins snippet parts and extracted content into the text
// body submitted for classification.
const snippetSeparator = " ... "

// processItem takes one normalized item through download, extraction and
// text-body assembly. Every step degrades on failure; the returned item is
// always classification-ready.
func (s *Screener) processItem(ctx context.Context, meta domain.ItemMetadata) domain.Item {
	item := domain.Item{ItemMetadata: meta}

	if meta.TextExtractionPossible {
		var data []byte
		item.Downloaded, data = s.download(ctx, meta)
		if item.Downloaded != nil {
			item.ExtractedContent = s.extractText(item.Downloaded.ContentType, data, meta.ID)
		}
	}

	buildTextBody(&item)
	return item
}

// download returns the item's content from the store when present, fetching
// and storing it otherwise. The existence check and the put are not atomic;
// two concurrent pipelines for the same id may both fetch, which is fine
// because stored content is immutable.
func (s *Screener) download(ctx context.Context, meta domain.ItemMetadata) (*domain.DownloadedContent, []byte) {
	exists, err := s.store.Exists(ctx, meta.ID)
	if err != nil {
		s.logger.Warn("content store check failed",
			zap.String("id", meta.ID),
			zap.Error(err),
		)
	}

	if err == nil && exists {
		data, contentType, getErr := s.store.Get(ctx, meta.ID)
		if getErr == nil {
			if s.metrics != nil {
				s.metrics.RecordStoreHit()
			}
			return &domain.DownloadedContent{BlobKey: meta.ID, ContentType: contentType}, data
		}
		s.logger.Warn("content store get failed",
			zap.String("id", meta.ID),
			zap.Error(getErr),
		)
	}

	if s.metrics != nil {
		s.metrics.RecordStoreMiss()
	}

	data, contentType, err := s.fetcher.Fetch(ctx, meta.Link)
	if err != nil {
		s.logger.Warn("content fetch failed",
			zap.String("id", meta.ID),
			zap.String("link", meta.Link),
			zap.Error(err),
		)
		if s.metrics != nil {
			s.metrics.RecordFetch("error", 0)
		}
		return nil, nil
	}
	if s.metrics != nil {
		s.metrics.RecordFetch("success", len(data))
	}

	if err := s.store.Put(ctx, meta.ID, data, contentType); err != nil {
		s.logger.Warn("content store put failed",
			zap.String("id", meta.ID),
			zap.Error(err),
		)
		return nil, nil
	}

	return &domain.DownloadedContent{BlobKey: meta.ID, ContentType: contentType}, data
}

// extractText dispatches on content type: pdf goes to the PDF extractor,
// everything else is treated as HTML. Extraction failure degrades to no text.
func (s *Screener) extractText(contentType string, data []byte, id string) string {
	extractor := s.html
	kind := "html"
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		extractor = s.pdf
		kind = "pdf"
	}

	text, err := extractor.Extract(data)
	if err != nil {
		s.logger.Warn("text extraction failed",
			zap.String("id", id),
			zap.String("kind", kind),
			zap.Error(err),
		)
		if s.metrics != nil {
			s.metrics.RecordExtraction(kind, "error")
		}
		return ""
	}

	if s.metrics != nil {
		s.metrics.RecordExtraction(kind, "success")
	}
	return text
}

// buildTextBody assembles the classification text body from the snippets plus
// any extracted content, then clears the extracted content so items stay
// small downstream. It never fails: with no snippets it falls back to the
// primary snippet alone.
func buildTextBody(item *domain.Item) {
	if len(item.Snippets) == 0 {
		item.TextBody = item.Snippet
		item.ExtractedContent = ""
		return
	}

	body := strings.Join(item.Snippets, snippetSeparator)
	if item.ExtractedContent != "" {
		body += snippetSeparator + item.ExtractedContent
	}

	item.TextBody = body
	item.ExtractedContent = ""
}
