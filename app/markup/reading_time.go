package markup

import (
	"fmt"
	"strings"
)

// Average adult reading speed used by the estimate.
const wordsPerMinute = 200

// EstimateReadingTime returns a human-readable reading time estimate for a
// Markdown string, e.g. "5 min read". The estimate never goes below one
// minute.
func EstimateReadingTime(markdown string) string {
	words := len(strings.Fields(markdown))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}
