package html

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseHTMLMinimalDocument(t *testing.T) {
	doc, errs := ParseHTML("<!DOCTYPE html><html><head><title>T</title></head><body><p>hi</p></body></html>")
	assert.Empty(t, errs)

	assert.Len(t, doc.ChildNodes(), 2)
	assert.Equal(t, DocumentTypeNode, doc.ChildNodes()[0].Type)
	assert.Equal(t, "html", doc.ChildNodes()[0].TagName)

	htmlEl := doc.ChildNodes()[1]
	assert.Equal(t, "html", htmlEl.TagName)

	head := htmlEl.ChildNodes()[0]
	assert.Equal(t, "head", head.TagName)
	title := head.ChildNodes()[0]
	assert.Equal(t, "title", title.TagName)

	body := htmlEl.ChildNodes()[1]
	assert.Equal(t, "body", body.TagName)
	p := body.ChildNodes()[0]
	assert.Equal(t, "p", p.TagName)
	assert.Equal(t, "hi", p.ChildNodes()[0].Data)
}

func TestParseHTMLImpliedHtmlHeadBody(t *testing.T) {
	doc, _ := ParseHTML("just text")
	htmlEl := doc.ChildNodes()[0]
	assert.Equal(t, "html", htmlEl.TagName)

	var body *Node
	for _, c := range htmlEl.ChildNodes() {
		if c.TagName == "body" {
			body = c
		}
	}
	assert.NotNil(t, body)
	assert.Equal(t, "just text", body.ChildNodes()[0].Data)
}

func TestParseHTMLQuirksModeFromForceQuirksDoctype(t *testing.T) {
	tb := NewTreeBuilder()
	tok := NewTokenizer("<!DOCTYPE >", tb)
	tok.Run()
	assert.True(t, tb.quirksMode)
}

func TestParseHTMLVoidElementNotPushed(t *testing.T) {
	doc, _ := ParseHTML("<html><body><br>after</body></html>")
	htmlEl := doc.ChildNodes()[0]
	var body *Node
	for _, c := range htmlEl.ChildNodes() {
		if c.TagName == "body" {
			body = c
		}
	}
	assert.Len(t, body.ChildNodes(), 2)
	assert.Equal(t, "br", body.ChildNodes()[0].TagName)
	assert.Equal(t, "after", body.ChildNodes()[1].Data)
}

func TestParseHTMLCommentBeforeHtml(t *testing.T) {
	doc, _ := ParseHTML("<!-- top --><html></html>")
	assert.Equal(t, CommentNode, doc.ChildNodes()[0].Type)
	assert.Equal(t, " top ", doc.ChildNodes()[0].Data)
}

func TestParseHTMLEmptyHeadNoImpliedBody(t *testing.T) {
	doc, errs := ParseHTML("<!DOCTYPE html><html><head></head></html>")
	assert.Empty(t, errs)

	assert.Equal(t, DocumentTypeNode, doc.ChildNodes()[0].Type)
	htmlEl := doc.ChildNodes()[1]
	assert.Equal(t, "html", htmlEl.TagName)
	assert.Len(t, htmlEl.ChildNodes(), 1)
	assert.Equal(t, "head", htmlEl.ChildNodes()[0].TagName)
}

func TestParseHTMLPrettyPrintIsStable(t *testing.T) {
	doc, _ := ParseHTML("<html><body><p>hi</p></body></html>")
	want := "#document\n" +
		"  <html>\n" +
		"    <head>\n" +
		"    <body>\n" +
		"      <p>\n" +
		"        \"hi\"\n"

	if diff := cmp.Diff(want, Print(doc)); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}
