package domain

// DownloadedContent points at a fetched page in the content store.
// BlobKey is always the item id.
type DownloadedContent struct {
	BlobKey     string `json:"blob_key"`
	ContentType string `json:"content_type"`
}

// ItemMetadata is the normalized form of one raw search hit. It is created
// once by the metadata normalizer and only ever gains fields after that:
// metadata -> +download -> +extraction -> +text body -> +score. Later stages
// must tolerate any optional field being absent.
type ItemMetadata struct {
	Title       string   `json:"title"`
	Titles      []string `json:"titles"` // primary first, then alternates from embedded metadata; order matters, duplicates allowed
	Snippet     string   `json:"snippet"`
	HTMLSnippet string   `json:"html_snippet"`
	Snippets    []string `json:"snippets"` // primary first
	Link        string   `json:"link"`
	Image       string   `json:"image,omitempty"` // absolute http(s) url, empty when none found
	Date        string   `json:"date,omitempty"`  // ISO-8601, empty when none found

	// ID is derived from Link with the scheme stripped and the rest
	// percent-encoded. It is the only stable identity in the pipeline and
	// doubles as the content-store key.
	ID string `json:"id"`

	TextExtractionPossible bool `json:"text_extraction_possible"`
}

// Item is the evolving record for one hit as it moves through extraction
// and text-body assembly.
type Item struct {
	ItemMetadata

	Downloaded *DownloadedContent `json:"downloaded_content,omitempty"` // nil when extraction was skipped or the fetch failed

	// ExtractedContent holds the extractor output until the text body is
	// built, then it is cleared to bound payload size downstream.
	ExtractedContent string `json:"extracted_content,omitempty"`

	TextBody string `json:"text_body"`
}

// ScoredItem is an item after classification.
type ScoredItem struct {
	Item

	Score         float64 `json:"score"`
	Severity      float64 `json:"severity"`
	ScoringErrors string  `json:"scoring_errors"` // empty when scoring succeeded
	ScoringTitle  string  `json:"scoring_title"`
}

// Batch is a size-bounded group of items submitted together for
// classification. Batches partition a language's item set: every item appears
// in exactly one batch, in original relative order.
type Batch []Item
