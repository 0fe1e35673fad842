package html

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/kitbuilder587/adversify/internal/extract"
)

// Extractor pulls article text out of an HTML document. Readability finds the
// main content block; when it yields nothing (index pages, unusual markup)
// the whole body text is used instead.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(data []byte) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", extract.ErrMalformedInput
	}

	if text := readabilityText(data); text != "" {
		return text, nil
	}

	text, err := bodyText(data)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", extract.ErrNoText
	}
	return text, nil
}

func readabilityText(data []byte) string {
	article, err := readability.FromReader(bytes.NewReader(data), &url.URL{})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}

func bodyText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", extract.ErrMalformedInput
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	return strings.Join(strings.Fields(text), " "), nil
}
