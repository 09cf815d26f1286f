package html

import "golang.org/x/net/html/atom"

// InsertionMode is one state of the tree constructor's insertion-mode
// state machine (spec §4.3).
type InsertionMode int

const (
	InitialMode InsertionMode = iota
	BeforeHtmlMode
	BeforeHeadMode
	InHeadMode
	AfterHeadMode
	InBodyMode
	AfterBodyMode
	AfterAfterBodyMode
)

// TreeBuilder implements the HTML tree construction algorithm (component
// C), consuming tokens from a Tokenizer and building a DOM (component D).
//
// Grounded on chtml/html/parse.go's parser type: the stack of open
// elements (p.oe), the insertion-mode dispatch (p.im), and the head
// element pointer all mirror that structure, generalized from
// golang.org/x/net/html's *html.Node to this package's own Node and from
// its Token to this package's own Token.
type TreeBuilder struct {
	Document *Node

	mode       InsertionMode
	openElems  []*Node
	headElem   *Node
	quirksMode bool
	done       bool

	// OnParseError, if set, receives every parse error raised during
	// tokenization or tree construction. Processing never stops because
	// of one.
	OnParseError func(ParseErrorCode)
}

// NewTreeBuilder constructs a tree builder with a fresh Document root.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		Document: &Node{Type: DocumentNode},
		mode:     InitialMode,
	}
}

// ParseHTML tokenizes and parses input in one pass, returning the
// resulting document and every parse error raised along the way.
func ParseHTML(input string) (*Node, []ParseErrorCode) {
	tb := NewTreeBuilder()
	var errs []ParseErrorCode
	tb.OnParseError = func(c ParseErrorCode) { errs = append(errs, c) }
	tok := NewTokenizer(input, tb)
	tok.Run()
	return tb.Document, errs
}

// HandleToken implements TokenHandler, dispatching to the current
// insertion mode.
func (tb *TreeBuilder) HandleToken(t Token) {
	if tb.done {
		return
	}
	switch tb.mode {
	case InitialMode:
		tb.initialMode(t)
	case BeforeHtmlMode:
		tb.beforeHtmlMode(t)
	case BeforeHeadMode:
		tb.beforeHeadMode(t)
	case InHeadMode:
		tb.inHeadMode(t)
	case AfterHeadMode:
		tb.afterHeadMode(t)
	case InBodyMode:
		tb.inBodyMode(t)
	case AfterBodyMode:
		tb.afterBodyMode(t)
	case AfterAfterBodyMode:
		tb.afterAfterBodyMode(t)
	}
	if t.Kind == EndOfFileToken {
		tb.done = true
	}
}

// HandleParseError implements TokenHandler.
func (tb *TreeBuilder) HandleParseError(c ParseErrorCode) {
	if tb.OnParseError != nil {
		tb.OnParseError(c)
	}
}

func (tb *TreeBuilder) currentNode() *Node {
	if len(tb.openElems) == 0 {
		return nil
	}
	return tb.openElems[len(tb.openElems)-1]
}

func (tb *TreeBuilder) push(n *Node) {
	tb.openElems = append(tb.openElems, n)
}

func (tb *TreeBuilder) pop() *Node {
	if len(tb.openElems) == 0 {
		return nil
	}
	n := tb.openElems[len(tb.openElems)-1]
	tb.openElems = tb.openElems[:len(tb.openElems)-1]
	return n
}

// insertionParent returns the node new content is appended to — "the
// appropriate place for inserting a node" per spec §4.3, simplified to
// the current node since foster parenting (table-specific reparenting) is
// out of scope.
func (tb *TreeBuilder) insertionParent() *Node {
	if cur := tb.currentNode(); cur != nil {
		return cur
	}
	return tb.Document
}

func (tb *TreeBuilder) insertElementForToken(t Token) *Node {
	n := NewElement(t.TagName)
	n.Attributes = append(n.Attributes, t.Attributes...)
	tb.insertionParent().AppendChild(n)
	tb.push(n)
	return n
}

func (tb *TreeBuilder) insertComment(t Token) {
	n := NewComment(t.Data)
	tb.insertionParent().AppendChild(n)
}

// insertCharacter appends data to the insertion point's last child if
// that child is a text node, otherwise creates a new one — per spec
// §4.3's character-insertion algorithm.
//
// Fixes spec §9 item 3: inspects the actual current insertion parent's
// last child rather than assuming the tree builder's own last-created
// node is still adjacent (which broke once InHead content was added
// after the initial head element).
func (tb *TreeBuilder) insertCharacter(data string) {
	parent := tb.insertionParent()
	if last := parent.LastChild(); last != nil && last.Type == TextNode {
		last.Data += data
		return
	}
	parent.AppendChild(NewText(data))
}

func isWhitespaceOnly(s string) bool {
	for _, r := range s {
		if !isWhitespace(r) {
			return false
		}
	}
	return true
}

// initialMode implements spec §4.3's "initial" insertion mode.
func (tb *TreeBuilder) initialMode(t Token) {
	switch t.Kind {
	case CharacterToken:
		if isWhitespaceOnly(t.Data) {
			return
		}
		tb.mode = BeforeHtmlMode
		tb.beforeHtmlMode(t)
	case CommentToken:
		tb.insertComment(t)
	case DoctypeToken:
		tb.Document.AppendChild(doctypeNodeFromToken(t))
		tb.quirksMode = isQuirksDoctype(t)
		tb.mode = BeforeHtmlMode
	default:
		tb.mode = BeforeHtmlMode
		tb.beforeHtmlMode(t)
	}
}

// beforeHtmlMode implements spec §4.3's "before html" insertion mode.
func (tb *TreeBuilder) beforeHtmlMode(t Token) {
	switch t.Kind {
	case CharacterToken:
		if isWhitespaceOnly(t.Data) {
			return
		}
		tb.anythingElseBeforeHtml(t)
	case CommentToken:
		tb.insertComment(t)
	case DoctypeToken:
		tb.HandleParseError(UnexpectedDoctype)
	case StartTagToken:
		if t.TagName == "html" {
			tb.insertElementForToken(t)
			tb.mode = BeforeHeadMode
			return
		}
		tb.anythingElseBeforeHtml(t)
	case EndTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
			tb.anythingElseBeforeHtml(t)
		default:
			tb.HandleParseError(UnexpectedEndTag)
		}
	default:
		tb.anythingElseBeforeHtml(t)
	}
}

func (tb *TreeBuilder) anythingElseBeforeHtml(t Token) {
	html := NewElement("html")
	tb.Document.AppendChild(html)
	tb.push(html)
	tb.mode = BeforeHeadMode
	tb.beforeHeadMode(t)
}

// beforeHeadMode implements spec §4.3's "before head" insertion mode.
func (tb *TreeBuilder) beforeHeadMode(t Token) {
	switch t.Kind {
	case CharacterToken:
		if isWhitespaceOnly(t.Data) {
			return
		}
		tb.anythingElseBeforeHead(t)
	case CommentToken:
		tb.insertComment(t)
	case DoctypeToken:
		tb.HandleParseError(UnexpectedDoctype)
	case StartTagToken:
		switch t.TagName {
		case "html":
			tb.inBodyMode(t)
		case "head":
			head := tb.insertElementForToken(t)
			tb.headElem = head
			tb.mode = InHeadMode
		default:
			tb.anythingElseBeforeHead(t)
		}
	case EndTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
			tb.anythingElseBeforeHead(t)
		default:
			tb.HandleParseError(UnexpectedEndTag)
		}
	default:
		tb.anythingElseBeforeHead(t)
	}
}

func (tb *TreeBuilder) anythingElseBeforeHead(t Token) {
	head := tb.insertElementForToken(Token{Kind: StartTagToken, TagName: "head"})
	tb.headElem = head
	tb.mode = InHeadMode
	tb.inHeadMode(t)
}

// inHeadMode implements spec §4.3's "in head" insertion mode.
func (tb *TreeBuilder) inHeadMode(t Token) {
	// Inside an open <title>, <style> or <script>, text is the element's
	// content and the matching end tag closes it.
	if cur := tb.currentNode(); cur != nil && cur != tb.headElem {
		switch {
		case t.Kind == CharacterToken:
			tb.insertCharacter(t.Data)
			return
		case t.Kind == EndTagToken && t.TagName == cur.TagName:
			tb.pop()
			return
		}
	}
	switch t.Kind {
	case CharacterToken:
		if isWhitespaceOnly(t.Data) {
			tb.insertCharacter(t.Data)
			return
		}
		tb.popHeadAndContinue(AfterHeadMode, t, tb.afterHeadMode)
	case CommentToken:
		tb.insertComment(t)
	case DoctypeToken:
		tb.HandleParseError(UnexpectedDoctype)
	case StartTagToken:
		switch t.TagName {
		case "html":
			tb.inBodyMode(t)
		case "meta", "title", "base", "link", "style", "script", "noscript":
			tb.insertElementForToken(t)
			if t.TagName != "title" && t.TagName != "style" && t.TagName != "script" {
				tb.pop()
			}
		case "head":
			tb.HandleParseError(UnexpectedDoctype)
		default:
			tb.popHeadAndContinue(AfterHeadMode, t, tb.afterHeadMode)
		}
	case EndTagToken:
		switch t.TagName {
		case "head":
			tb.pop()
			tb.mode = AfterHeadMode
		case "body", "html", "br":
			tb.popHeadAndContinue(AfterHeadMode, t, tb.afterHeadMode)
		default:
			tb.HandleParseError(UnexpectedEndTag)
		}
	default:
		tb.popHeadAndContinue(AfterHeadMode, t, tb.afterHeadMode)
	}
}

// popHeadAndContinue pops the head element (as if an implied </head> were
// seen), switches mode, and reprocesses t in the new mode.
func (tb *TreeBuilder) popHeadAndContinue(next InsertionMode, t Token, handler func(Token)) {
	tb.pop()
	tb.mode = next
	handler(t)
}

// afterHeadMode implements spec §4.3's "after head" insertion mode.
func (tb *TreeBuilder) afterHeadMode(t Token) {
	switch t.Kind {
	case CharacterToken:
		if isWhitespaceOnly(t.Data) {
			tb.insertCharacter(t.Data)
			return
		}
		tb.anythingElseAfterHead(t)
	case CommentToken:
		tb.insertComment(t)
	case DoctypeToken:
		tb.HandleParseError(UnexpectedDoctype)
	case StartTagToken:
		switch t.TagName {
		case "html":
			tb.inBodyMode(t)
		case "body":
			tb.insertElementForToken(t)
			tb.mode = InBodyMode
		default:
			tb.anythingElseAfterHead(t)
		}
	case EndTagToken:
		switch t.TagName {
		case "html":
			// Matches html_document_parser.rs's InHead/AfterHead "_ => {}":
			// a closing </html> here is left alone rather than implying a
			// <body> that was never opened (spec §8 scenario 1 — a
			// document that ends right after </head> has no body node).
		case "body", "br":
			tb.anythingElseAfterHead(t)
		default:
			tb.HandleParseError(UnexpectedEndTag)
		}
	case EndOfFileToken:
		// As above: reaching EOF still in AfterHead implies no body.
	default:
		tb.anythingElseAfterHead(t)
	}
}

func (tb *TreeBuilder) anythingElseAfterHead(t Token) {
	tb.insertElementForToken(Token{Kind: StartTagToken, TagName: "body"})
	tb.mode = InBodyMode
	tb.inBodyMode(t)
}

// inBodyMode implements a minimal form of spec §4.3's "in body" insertion
// mode: enough to build ordinary element/text/comment content. The full
// WHATWG algorithm's special-element reconstruction-of-active-formatting
// and scope-based closing rules are out of scope (spec.md does not name
// them); this handles generic elements and character data, which is what
// the supplemented grammar needs.
func (tb *TreeBuilder) inBodyMode(t Token) {
	switch t.Kind {
	case CharacterToken:
		if t.Data == "\x00" {
			tb.HandleParseError(UnexpectedNullCharacter)
			return
		}
		tb.insertCharacter(t.Data)
	case CommentToken:
		tb.insertComment(t)
	case DoctypeToken:
		tb.HandleParseError(UnexpectedDoctype)
	case StartTagToken:
		switch t.TagName {
		case "html":
			// Attributes merge onto the existing <html> element in the
			// full algorithm; not implemented here as it has no
			// observable effect on tree shape.
		default:
			tb.insertElementForToken(t)
			if isVoidElement(t.TagName) || t.SelfClosing {
				tb.pop()
			}
		}
	case EndTagToken:
		switch t.TagName {
		case "body":
			tb.mode = AfterBodyMode
		case "html":
			tb.mode = AfterBodyMode
			tb.afterBodyMode(t)
		default:
			tb.closeMatchingElement(t.TagName)
		}
	case EndOfFileToken:
		// Stack of open elements is left as-is; document is complete.
	}
}

// closeMatchingElement pops the stack of open elements up to and
// including the nearest element named tagName, per the simplified
// "generate implied end tags" behavior spec.md's in-body subset relies
// on. If no such element is open, the end tag is ignored with a parse
// error.
func (tb *TreeBuilder) closeMatchingElement(tagName string) {
	want := atom.Lookup([]byte(tagName))
	for i := len(tb.openElems) - 1; i >= 0; i-- {
		if tb.openElems[i].DataAtom == want && tb.openElems[i].TagName == tagName {
			tb.openElems = tb.openElems[:i]
			return
		}
	}
	tb.HandleParseError(UnexpectedEndTag)
}

// isVoidElement reports whether tagName is one of the HTML void elements
// (spec §4.3's "self-closing" set), dispatching on atom.Atom identity the
// way golang.org/x/net/html's own parser does instead of string-switching
// on tagName directly.
func isVoidElement(tagName string) bool {
	switch atom.Lookup([]byte(tagName)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
		atom.Img, atom.Input, atom.Link, atom.Meta, atom.Param,
		atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}

// afterBodyMode implements spec §4.3's "after body" insertion mode.
func (tb *TreeBuilder) afterBodyMode(t Token) {
	switch t.Kind {
	case CharacterToken:
		if isWhitespaceOnly(t.Data) {
			tb.inBodyMode(t)
			return
		}
		tb.anythingElseAfterBody(t)
	case CommentToken:
		if html := tb.rootHTMLElement(); html != nil {
			n := NewComment(t.Data)
			html.AppendChild(n)
		}
	case DoctypeToken:
		tb.HandleParseError(UnexpectedDoctype)
	case StartTagToken:
		if t.TagName == "html" {
			tb.inBodyMode(t)
			return
		}
		tb.anythingElseAfterBody(t)
	case EndTagToken:
		if t.TagName == "html" {
			tb.mode = AfterAfterBodyMode
			return
		}
		tb.anythingElseAfterBody(t)
	default:
		tb.anythingElseAfterBody(t)
	}
}

func (tb *TreeBuilder) anythingElseAfterBody(t Token) {
	tb.HandleParseError(UnexpectedEndTag)
	tb.mode = InBodyMode
	tb.inBodyMode(t)
}

func (tb *TreeBuilder) rootHTMLElement() *Node {
	for _, c := range tb.Document.ChildNodes() {
		if c.Type == ElementNode && c.TagName == "html" {
			return c
		}
	}
	return nil
}

// afterAfterBodyMode implements spec §4.3's "after after body" insertion
// mode.
func (tb *TreeBuilder) afterAfterBodyMode(t Token) {
	switch t.Kind {
	case CommentToken:
		n := NewComment(t.Data)
		tb.Document.AppendChild(n)
	case DoctypeToken:
		tb.inBodyMode(t)
	case CharacterToken:
		if isWhitespaceOnly(t.Data) {
			tb.inBodyMode(t)
			return
		}
		tb.mode = InBodyMode
		tb.inBodyMode(t)
	case StartTagToken:
		if t.TagName == "html" {
			tb.inBodyMode(t)
			return
		}
		tb.mode = InBodyMode
		tb.inBodyMode(t)
	case EndOfFileToken:
	default:
		tb.mode = InBodyMode
		tb.inBodyMode(t)
	}
}
