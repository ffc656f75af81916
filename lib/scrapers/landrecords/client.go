package landrecords

import (
	"bytes"
	"context"
	"fmt"
	"landrecords/lib/restyutil"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// BrowserHeaders is sent with every request so the recorder's site serves the
// same markup a desktop browser would get.
var BrowserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/87.0.4280.88 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// FetchError is returned for transport failures and non-2xx responses.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
	schema  Schema
}

type ClientOptions struct {
	BaseUrl string
	Schema  Schema
	// zero means no timeout beyond the transport default
	Timeout time.Duration
	// if set, raw HTTP exchanges are written here while debug logging is on
	Output restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	if !baseUrl.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", opts.BaseUrl)
	}
	if !strings.HasSuffix(baseUrl.Path, "/") {
		baseUrl.Path += "/"
	}

	client := resty.New()
	client.SetHeaders(BrowserHeaders)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	restyutil.InstrumentClient(client, tracer, opts.Output)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
		schema:  opts.Schema,
	}, nil
}

// Resolve resolves a possibly relative reference against the site base. The
// query is re-encoded since the site emits links with raw spaces in them.
func (c *Client) Resolve(ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	resolved := c.BaseUrl.ResolveReference(parsed)
	if resolved.RawQuery != "" {
		query, err := url.ParseQuery(resolved.RawQuery)
		if err != nil {
			return "", fmt.Errorf("invalid query in %q: %w", ref, err)
		}
		resolved.RawQuery = query.Encode()
	}
	return resolved.String(), nil
}

func (c *Client) SearchURL(q SearchQuery) (string, error) {
	link, err := c.Resolve(c.schema.SearchPath)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	parsed.RawQuery = q.Values().Encode()
	return parsed.String(), nil
}

func (c *Client) DetailURL(serial string) (string, error) {
	link, err := c.Resolve(c.schema.DetailPath)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	query := url.Values{}
	query.Set(c.schema.SerialParam, strings.ReplaceAll(serial, ":", ""))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// Fetch performs a single GET and parses the response body as HTML.
func (c *Client) Fetch(ctx context.Context, link string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, &FetchError{URL: link, Err: err}
	}
	if !res.IsSuccess() {
		return nil, &FetchError{URL: link, Status: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse html from %s: %w", link, err)
	}
	return doc, nil
}
