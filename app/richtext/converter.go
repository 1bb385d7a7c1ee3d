package richtext

import (
	"fmt"
	"strconv"
	"strings"
)

// Converter renders a rich-text document as Markdown. Only the block types
// the editor emits are supported: heading, paragraph, list, link. Anything
// else is dropped silently.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

// Run converts a document to a Markdown string. An absent or empty document
// yields "".
func (c *Converter) Run(doc Document) string {
	if len(doc) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(doc))
	for _, node := range doc {
		block, ok := c.convertBlock(node)
		if !ok || block == "" {
			continue
		}
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n\n")
}

// convertBlock returns the Markdown for a single top-level node. The second
// return value is false for unrecognized block types, which are excluded
// from the join set entirely.
func (c *Converter) convertBlock(node Node) (string, bool) {
	switch node.Type {
	case "heading":
		level := c.headingLevel(node.Tag)
		return strings.Repeat("#", level) + " " + c.childText(node), true
	case "paragraph":
		return c.childText(node), true
	case "list":
		return c.convertList(node), true
	case "link":
		return fmt.Sprintf("[%s](%s)", c.childText(node), node.URL), true
	default:
		return "", false
	}
}

func (c *Converter) convertList(node Node) string {
	lines := make([]string, 0, len(node.Children))
	for _, item := range node.Children {
		if item.Type != "list-item" {
			continue
		}
		text := c.childText(item)
		if text == "" {
			continue
		}
		lines = append(lines, "- "+text)
	}

	return strings.Join(lines, "\n")
}

// headingLevel parses the numeric suffix of a heading tag ("h2" -> 2),
// defaulting to 1 when the tag is absent or unparsable.
func (c *Converter) headingLevel(tag string) int {
	if len(tag) < 2 {
		return 1
	}

	level, err := strconv.Atoi(tag[1:])
	if err != nil || level < 1 {
		return 1
	}

	return level
}

// childText concatenates the text fragments of a node's children in order,
// with no separator between fragments.
func (c *Converter) childText(node Node) string {
	var sb strings.Builder
	for _, child := range node.Children {
		sb.WriteString(child.Text)
	}
	return sb.String()
}
