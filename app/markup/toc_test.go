package markup

import (
	"strings"
	"testing"
)

func TestToc_BasicOutline(t *testing.T) {
	markdown := "## Intro\n\nSome text.\n\n## Usage\n\nMore text."

	fragment, entries := Toc(markdown, 2)

	expected := "- [Intro](#intro)\n- [Usage](#usage)"
	if fragment != expected {
		t.Errorf("Expected fragment %q, got %q", expected, fragment)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Text != "Intro" || entries[0].Level != 2 || entries[0].Anchor != "intro" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].Text != "Usage" || entries[1].Level != 2 || entries[1].Anchor != "usage" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestToc_DepthFilter(t *testing.T) {
	markdown := "# Title\n\n## Section\n\n### Subsection"

	_, entries := Toc(markdown, 2)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries with maxDepth 2, got %d", len(entries))
	}

	for _, entry := range entries {
		if entry.Level > 2 {
			t.Errorf("Entry %q exceeds max depth: level %d", entry.Text, entry.Level)
		}
	}
}

func TestToc_IndentRelativeToShallowestHeading(t *testing.T) {
	markdown := "## Section\n\n### Subsection"

	fragment, _ := Toc(markdown, 3)

	lines := strings.Split(fragment, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	if strings.HasPrefix(lines[0], " ") {
		t.Errorf("Shallowest heading should not be indented: %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "  - ") {
		t.Errorf("Deeper heading should be indented two spaces: %q", lines[1])
	}
}

func TestToc_AnchorSlugging(t *testing.T) {
	markdown := "## Hello, World! 2.0"

	_, entries := Toc(markdown, 2)

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	if entries[0].Anchor != "hello-world-20" {
		t.Errorf("Expected anchor 'hello-world-20', got %q", entries[0].Anchor)
	}
}

func TestToc_StripsEncodedHashFromFragment(t *testing.T) {
	// A heading containing '#' produces a %23 sequence once percent-encoded;
	// the fragment must not carry it.
	markdown := "## C%23 Guide"

	fragment, _ := Toc(markdown, 2)

	if strings.Contains(fragment, "%23") {
		t.Errorf("Fragment should not contain %%23: %q", fragment)
	}
}

func TestToc_EmptyMarkdown(t *testing.T) {
	fragment, entries := Toc("", 2)

	if fragment != "" {
		t.Errorf("Expected empty fragment, got %q", fragment)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestToc_NonHeadingLinesIgnored(t *testing.T) {
	markdown := "## Real\n\n#not-a-heading\n\n- # list line"

	_, entries := Toc(markdown, 2)

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Real" {
		t.Errorf("Expected entry 'Real', got %q", entries[0].Text)
	}
}

func TestToc_InvalidDepthFallsBackToDefault(t *testing.T) {
	markdown := "## Section\n\n### Subsection"

	_, entries := Toc(markdown, 0)

	// Default depth is 2, so the h3 is excluded
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry with default depth, got %d", len(entries))
	}
}
