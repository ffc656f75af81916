package landrecords

import (
	"fmt"
	"net/url"
	"strings"
)

// SearchQuery holds the fields of the recorder's address search form. Empty
// fields are left out of the request.
type SearchQuery struct {
	House      string
	Direction  string
	Street     string
	StreetType string
	City       string
}

func (q SearchQuery) Values() url.Values {
	values := url.Values{}
	values.Set("av_valid", "...")
	values.Set("Submit", "    Search    ")

	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("av_house", q.House)
	set("av_dir", q.Direction)
	set("av_street", q.Street)
	set("street_type", q.StreetType)
	set("av_location", strings.ToUpper(q.City))
	return values
}

// SerialFromLink pulls the parcel serial out of a detail link such as
// "SerialVersion.asp?av_serial=123450001&...", it is the text between the
// first "=" and the following "=" or "&".
func SerialFromLink(link string) (string, error) {
	_, rest, found := strings.Cut(link, "=")
	if !found {
		return "", fmt.Errorf("%w: no serial in link %q", ErrStructure, link)
	}
	if end := strings.IndexAny(rest, "=&"); end >= 0 {
		rest = rest[:end]
	}
	if rest == "" {
		return "", fmt.Errorf("%w: empty serial in link %q", ErrStructure, link)
	}
	return rest, nil
}
