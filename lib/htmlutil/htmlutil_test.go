package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetAnchors(t *testing.T) {
	doc := parse(t, `<div>
		<a href="page.asp?p=2">  Next
		</a>
		<a href="page.asp?p=1"><b>Prev</b>ious</a>
		<a>no href</a>
	</div>`)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Equal(t, []Anchor{
		{Name: "Next", Href: "page.asp?p=2"},
		{Name: "Previous", Href: "page.asp?p=1"},
		{Name: "no href", Href: ""},
	}, anchors)
}

func TestChildNode(t *testing.T) {
	doc := parse(t, `<table><tr><td><b>Address:</b> 123 N MAIN ST <br>PROVO</td></tr></table>`)
	td := doc.Find("td").Nodes[0]

	first := ChildNode(td, 0)
	require.Equal(t, html.ElementNode, first.Type)
	require.Equal(t, "b", first.Data)

	second := ChildNode(td, 1)
	require.Equal(t, html.TextNode, second.Type)
	require.Equal(t, "123 N MAIN ST", strings.TrimSpace(GetText(second)))

	require.Nil(t, ChildNode(td, 10))
	require.Nil(t, ChildNode(td, -1))
	require.Nil(t, ChildNode(nil, 0))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "SMITH, JOHN & JANE", CleanText("\n\t SMITH,   JOHN &  JANE \n"))
}
