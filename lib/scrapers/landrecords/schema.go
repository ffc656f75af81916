package landrecords

import (
	"context"
	"errors"
	"fmt"
	"landrecords/lib/htmlutil"
	"landrecords/lib/records"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrStructure is wrapped by every error caused by a page not having the
// layout the schema expects.
var ErrStructure = errors.New("unexpected page structure")

// Position picks the Index-th match of Selector, in document order.
type Position struct {
	Selector string `json:"selector"`
	Index    int    `json:"index"`
}

// CellPath locates a table cell by walking Container -> tr[Row] -> td[Cell].
type CellPath struct {
	Container Position `json:"container"`
	Row       int      `json:"row"`
	Cell      int      `json:"cell"`
}

// Schema holds every layout-dependent detail of the recorder's site. When the
// site changes its markup, this is the only thing that should need editing.
type Schema struct {
	SearchPath  string `json:"search_path"`
	DetailPath  string `json:"detail_path"`
	SerialParam string `json:"serial_param"`

	// rows of the search results table, the first HeaderRows are skipped
	ResultRows       string `json:"result_rows"`
	ResultAnchor     string `json:"result_anchor"`
	DetailLinkPrefix string `json:"detail_link_prefix"`

	// the table holding the pagination links, and the text of the link to
	// the following page
	Pager        Position `json:"pager"`
	NextLinkText string   `json:"next_link_text"`

	Address CellPath `json:"address"`
	// the address is the n-th child node (text nodes included) of its cell
	AddressChild int      `json:"address_child"`
	Owner        CellPath `json:"owner"`
	Documents    Position `json:"documents"`

	HeaderRows int `json:"header_rows"`
}

func DefaultSchema() Schema {
	return Schema{
		SearchPath:  "LandRecords/AddressSearch.asp",
		DetailPath:  "LandRecords/property.asp",
		SerialParam: "av_serial",

		ResultRows:       "td table tr",
		ResultAnchor:     "td a",
		DetailLinkPrefix: "SerialVersion",

		Pager:        Position{Selector: "table table", Index: 1},
		NextLinkText: "Next",

		Address: CellPath{
			Container: Position{Selector: "table table table", Index: 0},
			Row:       2,
			Cell:      0,
		},
		AddressChild: 1,
		Owner: CellPath{
			Container: Position{Selector: ".TabbedPanelsContent", Index: 0},
			Row:       1,
			Cell:      2,
		},
		Documents: Position{Selector: ".TabbedPanelsContent", Index: 5},

		HeaderRows: 1,
	}
}

func nth(sel *goquery.Selection, what string, i int) (*goquery.Selection, error) {
	if i < 0 || i >= sel.Length() {
		return nil, fmt.Errorf("%w: %s[%d] not found (%d present)", ErrStructure, what, i, sel.Length())
	}
	return sel.Eq(i), nil
}

func (s Schema) find(root *goquery.Selection, p Position) (*goquery.Selection, error) {
	return nth(root.Find(p.Selector), p.Selector, p.Index)
}

func (s Schema) cell(root *goquery.Selection, c CellPath) (*goquery.Selection, error) {
	container, err := s.find(root, c.Container)
	if err != nil {
		return nil, err
	}
	row, err := nth(container.Find("tr"), c.Container.Selector+" tr", c.Row)
	if err != nil {
		return nil, err
	}
	return nth(row.Find("td"), c.Container.Selector+" td", c.Cell)
}

// ResultLinks returns the parcel detail links on a search results page and
// the reference to the next page, which is empty on the last page.
// Rows without a usable anchor are skipped.
func (s Schema) ResultLinks(ctx context.Context, doc *goquery.Document) ([]string, string) {
	var links []string
	doc.Find(s.ResultRows).Each(func(i int, row *goquery.Selection) {
		if i < s.HeaderRows {
			return
		}
		href, ok := row.Find(s.ResultAnchor).First().Attr("href")
		if !ok || !strings.HasPrefix(href, s.DetailLinkPrefix) {
			return
		}
		links = append(links, href)
	})

	pager := doc.Find(s.Pager.Selector)
	if s.Pager.Index >= pager.Length() {
		return links, ""
	}
	for _, a := range htmlutil.GetAnchors(ctx, pager.Eq(s.Pager.Index).Find("a")) {
		if a.Name == s.NextLinkText && a.Href != "" {
			return links, a.Href
		}
	}
	return links, ""
}

// Property extracts the address, owner, and document history from a parcel
// detail page. The URL is left for the caller to fill in.
func (s Schema) Property(doc *goquery.Document) (records.Property, error) {
	addressCell, err := s.cell(doc.Selection, s.Address)
	if err != nil {
		return records.Property{}, fmt.Errorf("address: %w", err)
	}
	addressNode := htmlutil.ChildNode(addressCell.Nodes[0], s.AddressChild)
	if addressNode == nil {
		return records.Property{}, fmt.Errorf("address: %w: cell has no child %d", ErrStructure, s.AddressChild)
	}

	ownerCell, err := s.cell(doc.Selection, s.Owner)
	if err != nil {
		return records.Property{}, fmt.Errorf("owner: %w", err)
	}

	panel, err := s.find(doc.Selection, s.Documents)
	if err != nil {
		return records.Property{}, fmt.Errorf("documents: %w", err)
	}
	docs := []records.DocumentRow{}
	panel.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i < s.HeaderRows {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		fields := make(records.DocumentRow, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			fields = append(fields, strings.TrimSpace(td.Text()))
		})
		docs = append(docs, fields)
	})

	return records.Property{
		Address: strings.TrimSpace(htmlutil.GetText(addressNode)),
		Owner:   strings.TrimSpace(ownerCell.Text()),
		Docs:    docs,
	}, nil
}
