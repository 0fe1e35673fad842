package service

import (
	"github.com/kitbuilder587/adversify/internal/domain"
)

// MakeBatches groups items into classification batches bounded by the UTF-8
// byte size of their text bodies. Each item is appended before the threshold
// check, so the item that crosses the threshold closes the batch it is
// already in; it is never moved to the next one. The trailing batch is
// emitted as-is. Batches always partition the input: same items, same order,
// nothing dropped or duplicated.
//
// A non-positive threshold degrades to a single batch with every item.
func MakeBatches(items []domain.Item, maxBytes int) []domain.Batch {
	if len(items) == 0 {
		return nil
	}
	if maxBytes <= 0 {
		return []domain.Batch{append(domain.Batch{}, items...)}
	}

	var batches []domain.Batch
	var current domain.Batch
	currentBytes := 0

	for _, item := range items {
		current = append(current, item)
		currentBytes += len(item.TextBody)
		if currentBytes > maxBytes {
			batches = append(batches, current)
			current = nil
			currentBytes = 0
		}
	}

	if len(current) > 0 {
		batches = append(batches, current)
	}

	return batches
}
