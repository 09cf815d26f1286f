package html

import "golang.org/x/net/html/atom"

// NodeType discriminates DOM node kinds (spec component D).
type NodeType int

const (
	DocumentNode NodeType = iota
	DocumentTypeNode
	ElementNode
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "#document"
	case DocumentTypeNode:
		return "#doctype"
	case ElementNode:
		return "element"
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	default:
		return "#unknown"
	}
}

// Node is a DOM tree node. Children are owned (Node.childNodes); parent,
// previous/next sibling are weak back-references maintained alongside the
// owning links. Go's tracing garbage collector makes an explicit weak
// pointer type unnecessary here — a plain *Node back-reference can't leak
// a cycle the way a manually-managed reference-counted graph would.
//
// Grounded on chtml/node.go's Node type and its InsertBefore/AppendChild/
// RemoveChild method set, generalized from CHTML's single child-slice
// convention to carry HTML-specific fields (TagName, Attributes, Data).
type Node struct {
	Type NodeType

	TagName    string
	DataAtom   atom.Atom // zero value for non-element nodes or non-standard tag names
	Attributes []Attribute

	Data string // text content for TextNode/CommentNode

	// DocumentType fields.
	PublicIdentifier string
	SystemIdentifier string

	parent          *Node
	previousSibling *Node
	nextSibling     *Node
	childNodes      []*Node
}

// NewElement constructs a detached element node with the given tag name,
// tagging it with its well-known atom.Atom (zero for non-standard names)
// the way golang.org/x/net/html's own parser does, for cheap tag-identity
// comparisons in the tree constructor.
func NewElement(tagName string) *Node {
	return &Node{Type: ElementNode, TagName: tagName, DataAtom: atom.Lookup([]byte(tagName))}
}

// NewText constructs a detached text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// NewComment constructs a detached comment node.
func NewComment(data string) *Node {
	return &Node{Type: CommentNode, Data: data}
}

// Parent returns n's parent, or nil if n is a root or detached.
func (n *Node) Parent() *Node { return n.parent }

// PreviousSibling returns n's previous sibling, or nil.
func (n *Node) PreviousSibling() *Node { return n.previousSibling }

// NextSibling returns n's next sibling, or nil.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// ChildNodes returns n's children in document order. The returned slice is
// owned by n; callers must not mutate it directly.
func (n *Node) ChildNodes() []*Node { return n.childNodes }

// FirstChild returns n's first child, or nil if n has none.
func (n *Node) FirstChild() *Node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[0]
}

// LastChild returns n's last child, or nil if n has none.
func (n *Node) LastChild() *Node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[len(n.childNodes)-1]
}

// AppendChild detaches child from any current parent and appends it as
// n's last child.
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if last := n.LastChild(); last != nil {
		last.nextSibling = child
		child.previousSibling = last
	} else {
		child.previousSibling = nil
	}
	child.nextSibling = nil
	child.parent = n
	n.childNodes = append(n.childNodes, child)
}

// InsertBefore detaches child from any current parent and inserts it
// immediately before ref. If ref is nil, InsertBefore behaves like
// AppendChild.
func (n *Node) InsertBefore(child, ref *Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	idx := -1
	for i, c := range n.childNodes {
		if c == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		n.AppendChild(child)
		return
	}
	prev := ref.previousSibling
	child.previousSibling = prev
	child.nextSibling = ref
	ref.previousSibling = child
	if prev != nil {
		prev.nextSibling = child
	}
	child.parent = n
	n.childNodes = append(n.childNodes, nil)
	copy(n.childNodes[idx+1:], n.childNodes[idx:])
	n.childNodes[idx] = child
}

// RemoveChild detaches child from n. It is a no-op if child is not
// currently a child of n.
func (n *Node) RemoveChild(child *Node) {
	idx := -1
	for i, c := range n.childNodes {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if child.previousSibling != nil {
		child.previousSibling.nextSibling = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.previousSibling = child.previousSibling
	}
	n.childNodes = append(n.childNodes[:idx], n.childNodes[idx+1:]...)
	child.parent = nil
	child.previousSibling = nil
	child.nextSibling = nil
}

// attr looks up an element's attribute by name.
func (n *Node) attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
