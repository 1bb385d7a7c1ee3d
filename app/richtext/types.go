package richtext

// Rich-text document types, as produced by the CMS's structured editor.
// A document is an ordered sequence of block nodes; child order is
// significant and preserved in output.

type Document []Node

type Node struct {
	Type     string `json:"type"`
	Tag      string `json:"tag,omitempty"`
	URL      string `json:"url,omitempty"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
}
