package landrecords

import (
	"context"
	"fmt"
	"landrecords/lib/records"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func resultsPage(serials []string, next string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table><tr><td><table>`)
	b.WriteString(`<tr><th>Serial</th><th>Address</th></tr>`)
	for _, serial := range serials {
		fmt.Fprintf(&b, `<tr><td><a href="SerialVersion.asp?av_serial=%s&amp;switch=0">%s</a></td><td>CENTER ST</td></tr>`, serial, serial)
	}
	b.WriteString(`<tr><td>no link here</td></tr>`)
	b.WriteString(`<tr><td><a href="Map.asp?serial=1">map</a></td></tr>`)
	b.WriteString(`</table><table><tr><td>`)
	b.WriteString(`<a href="LandRecords/AddressSearch.asp?page=0">Prev</a>`)
	if next != "" {
		fmt.Fprintf(&b, `<a href="%s"> Next </a>`, next)
	}
	b.WriteString(`</td></tr></table></td></tr></table></body></html>`)
	return b.String()
}

const noResultsPage = `<html><body><p>No records found.</p></body></html>`

func parse(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func readFixture(t testing.TB, name string) string {
	contents, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	return string(contents)
}

func TestResultLinks(t *testing.T) {
	schema := DefaultSchema()

	links, next := schema.ResultLinks(context.Background(), parse(t, resultsPage(
		[]string{"12:345:0001", "12:345:0002"},
		"LandRecords/AddressSearch.asp?page=2",
	)))
	require.Equal(t, []string{
		"SerialVersion.asp?av_serial=12:345:0001&switch=0",
		"SerialVersion.asp?av_serial=12:345:0002&switch=0",
	}, links)
	require.Equal(t, "LandRecords/AddressSearch.asp?page=2", next)

	links, next = schema.ResultLinks(context.Background(), parse(t, resultsPage([]string{"12:345:0003"}, "")))
	require.Len(t, links, 1)
	require.Empty(t, next)
}

func TestResultLinksNoPager(t *testing.T) {
	links, next := DefaultSchema().ResultLinks(context.Background(), parse(t, noResultsPage))
	require.Empty(t, links)
	require.Empty(t, next)
}

func TestProperty(t *testing.T) {
	prop, err := DefaultSchema().Property(parse(t, readFixture(t, "property.html")))
	require.Nil(t, err)

	expected := records.Property{
		Address: "100 N CENTER ST - PROVO",
		Owner:   "SMITH, JOHN & JANE",
		Docs: []records.DocumentRow{
			{"12345:2024", "1", "02/15/2024", "WARRANTY DEED", "DOE, JANE", "SMITH, JOHN"},
			{"67890:2024", "1", "01/01/2024", "TRUST DEED", "SMITH, JOHN", "BANK"},
			{"11111:1999", "2", "6/7/1999", "Deed"},
		},
	}
	if diff := cmp.Diff(expected, prop); diff != "" {
		t.Fatal(diff)
	}
}

func TestPropertyBrokenLayout(t *testing.T) {
	fixture := readFixture(t, "property.html")

	testCases := []struct {
		name     string
		contents string
	}{
		{name: "empty", contents: "<html><body></body></html>"},
		{
			name:     "no documents panel",
			contents: strings.Replace(fixture, `<div class="TabbedPanelsContent"><p>Legal description</p></div>`, "", 1),
		},
		{
			name:     "no address cell",
			contents: strings.Replace(fixture, `<tr><td>Tax District: 080</td></tr>`, "", 1),
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := DefaultSchema().Property(parse(t, test.contents))
			require.ErrorIs(t, err, ErrStructure)
		})
	}
}

func TestPropertyEmptyDocuments(t *testing.T) {
	fixture := readFixture(t, "property.html")
	start := strings.Index(fixture, `<tr><td>12345:2024`)
	end := strings.LastIndex(fixture, `</table>`)
	contents := fixture[:start] + fixture[end:]

	prop, err := DefaultSchema().Property(parse(t, contents))
	require.Nil(t, err)
	require.NotNil(t, prop.Docs)
	require.Empty(t, prop.Docs)
}

func TestSerialFromLink(t *testing.T) {
	serial, err := SerialFromLink("SerialVersion.asp?av_serial=12:345:0001&switch=0")
	require.Nil(t, err)
	require.Equal(t, "12:345:0001", serial)

	serial, err = SerialFromLink("SerialVersion.asp?av_serial=123450001")
	require.Nil(t, err)
	require.Equal(t, "123450001", serial)

	_, err = SerialFromLink("SerialVersion.asp")
	require.ErrorIs(t, err, ErrStructure)
	require.Equal(t, FailureParse, Classify(err))
}

func TestSearchQueryValues(t *testing.T) {
	values := SearchQuery{Street: "CENTER", City: "provo"}.Values()
	require.Equal(t, "CENTER", values.Get("av_street"))
	require.Equal(t, "PROVO", values.Get("av_location"))
	require.Equal(t, "...", values.Get("av_valid"))
	require.Equal(t, "    Search    ", values.Get("Submit"))
	require.False(t, values.Has("av_house"))
	require.False(t, values.Has("street_type"))
}
