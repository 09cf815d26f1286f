package html

// doctypeNodeFromToken builds a DocumentTypeNode from a DoctypeToken,
// grounded on chtml/html/doctype.go's token-to-node conversion.
func doctypeNodeFromToken(tok Token) *Node {
	return &Node{
		Type:             DocumentTypeNode,
		TagName:          tok.Name,
		PublicIdentifier: tok.PublicIdentifier,
		SystemIdentifier: tok.SystemIdentifier,
	}
}

// isQuirksDoctype reports whether a DOCTYPE token should put the document
// into quirks mode, per spec §4.3's simplified rule: a forced-quirks flag,
// a non-"html" name, or the presence of any public/system identifier
// (the full WHATWG table of known-quirky public ID prefixes is scoped out
// as a non-goal).
func isQuirksDoctype(tok Token) bool {
	if tok.ForceQuirks {
		return true
	}
	if tok.Name != "html" {
		return true
	}
	if tok.PublicIdentifier != "" || tok.SystemIdentifier != "" {
		return true
	}
	return false
}
