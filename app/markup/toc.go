package markup

import (
	"strings"
)

const DefaultTocDepth = 2

type TocEntry struct {
	Text   string `json:"text"`
	Level  int    `json:"level"`
	Anchor string `json:"anchor"`
}

// Toc builds a table of contents from the heading lines of a Markdown
// string. It returns a rendered Markdown fragment (a linked list outline)
// and the structured entries in document order. Headings deeper than
// maxDepth are excluded.
func Toc(markdown string, maxDepth int) (string, []TocEntry) {
	if maxDepth < 1 {
		maxDepth = DefaultTocDepth
	}

	var entries []TocEntry
	for _, line := range strings.Split(markdown, "\n") {
		level, text, ok := parseHeading(line)
		if !ok || level > maxDepth {
			continue
		}
		entries = append(entries, TocEntry{
			Text:   text,
			Level:  level,
			Anchor: slugifyAnchor(text),
		})
	}

	if len(entries) == 0 {
		return "", nil
	}

	// Indentation is relative to the shallowest heading that survived the
	// depth filter, so outlines that start at h2 are not indented.
	minLevel := entries[0].Level
	for _, entry := range entries {
		if entry.Level < minLevel {
			minLevel = entry.Level
		}
	}

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat("  ", entry.Level-minLevel))
		sb.WriteString("- [")
		sb.WriteString(entry.Text)
		sb.WriteString("](#")
		sb.WriteString(entry.Anchor)
		sb.WriteString(")")
	}

	// The upstream renderer chokes on percent-encoded hash marks inside
	// anchor links, so they are stripped from the rendered fragment.
	fragment := strings.ReplaceAll(sb.String(), "%23", "")

	return fragment, entries
}

func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}

	if level == 0 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}

	text := strings.TrimSpace(line[level+1:])
	if text == "" {
		return 0, "", false
	}

	return level, text, true
}

// slugifyAnchor converts heading text into a GitHub-style anchor: lowercase,
// spaces to hyphens, everything outside [a-z0-9-] dropped.
func slugifyAnchor(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
