package html

import (
	"fmt"
	"io"
	"strings"
)

// Print renders n and its descendants as an indented tree, one node per
// line, in the style of chtml/parse_test.go's dumpLevel helper.
func Print(n *Node) string {
	var b strings.Builder
	printNode(&b, n, 0)
	return b.String()
}

// Fprint writes the same indented tree Print returns to w.
func Fprint(w io.Writer, n *Node) error {
	_, err := io.WriteString(w, Print(n))
	return err
}

func printNode(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case DocumentNode:
		b.WriteString(indent + "#document\n")
	case DocumentTypeNode:
		fmt.Fprintf(b, "%s<!DOCTYPE %s>\n", indent, n.TagName)
	case ElementNode:
		fmt.Fprintf(b, "%s<%s%s>\n", indent, n.TagName, formatAttrs(n.Attributes))
	case TextNode:
		fmt.Fprintf(b, "%s%q\n", indent, n.Data)
	case CommentNode:
		fmt.Fprintf(b, "%s<!--%s-->\n", indent, n.Data)
	}
	for _, c := range n.ChildNodes() {
		printNode(b, c, depth+1)
	}
}

func formatAttrs(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}
	return b.String()
}
