package landrecords

import (
	"context"
	"errors"
	"fmt"
	"landrecords/lib/records"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

type FailureKind string

const (
	FailureNetwork FailureKind = "network"
	FailureParse   FailureKind = "parse"
	FailureOther   FailureKind = "other"
)

// Classify decides which kind of failure an error from fetching or parsing a
// parcel represents.
func Classify(err error) FailureKind {
	var fetchErr *FetchError
	switch {
	case errors.As(err, &fetchErr):
		return FailureNetwork
	case errors.Is(err, ErrStructure):
		return FailureParse
	default:
		return FailureOther
	}
}

// Failure records a parcel that was skipped.
type Failure struct {
	Street string
	Serial string
	Link   string
	Kind   FailureKind
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.Serial, f.Kind, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

type CrawlerOptions struct {
	// minimum time between two parcel detail requests, 0 disables throttling
	Delay time.Duration
}

type Crawler struct {
	client  *Client
	limiter *rate.Limiter
}

func NewCrawler(client *Client, opts CrawlerOptions) *Crawler {
	limit := rate.Inf
	if opts.Delay > 0 {
		limit = rate.Every(opts.Delay)
	}
	return &Crawler{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (c *Crawler) resultPage(ctx context.Context, link string) ([]string, string, error) {
	ctx, span := tracer.Start(ctx, "resultPage", trace.WithAttributes(
		attribute.String("url", link),
	))
	defer span.End()

	doc, err := c.client.Fetch(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch result page")
		return nil, "", err
	}
	resultPageCounter.Add(ctx, 1)

	links, nextRef := c.client.schema.ResultLinks(ctx, doc)
	if nextRef == "" {
		return links, "", nil
	}
	next, err := c.client.Resolve(nextRef)
	if err != nil {
		return nil, "", fmt.Errorf("resolve next page %q: %w", nextRef, err)
	}
	return links, next, nil
}

// SearchStreet collects the parcel detail links for every result page of a
// street search, following "Next" links until there are none. A next link
// pointing at a page that was already fetched ends the search.
func (c *Crawler) SearchStreet(ctx context.Context, street, city string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "SearchStreet", trace.WithAttributes(
		attribute.String("street", street),
		attribute.String("city", city),
	))
	defer span.End()

	next, err := c.client.SearchURL(SearchQuery{Street: street, City: city})
	if err != nil {
		return nil, err
	}

	links := []string{}
	visited := map[string]struct{}{}
	for next != "" {
		if _, seen := visited[next]; seen {
			slog.WarnContext(ctx, "result page already visited, stopping pagination", "street", street, "url", next)
			break
		}
		visited[next] = struct{}{}

		var pageLinks []string
		pageLinks, next, err = c.resultPage(ctx, next)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "pagination failed")
			return nil, fmt.Errorf("search %q: %w", street, err)
		}
		links = append(links, pageLinks...)
	}

	span.SetAttributes(attribute.Int("links", len(links)))
	slog.DebugContext(ctx, "search complete", "street", street, "pages", len(visited), "links", len(links))
	return links, nil
}

func (c *Crawler) property(ctx context.Context, link string) (records.Property, error) {
	doc, err := c.client.Fetch(ctx, link)
	if err != nil {
		return records.Property{}, err
	}
	return c.parseProperty(doc, link)
}

func (c *Crawler) parseProperty(doc *goquery.Document, link string) (records.Property, error) {
	prop, err := c.client.schema.Property(doc)
	if err != nil {
		return records.Property{}, err
	}
	prop.URL = link
	return prop, nil
}

// Property fetches and parses the detail page of a single parcel.
func (c *Crawler) Property(ctx context.Context, serial string) (records.Property, error) {
	ctx, span := tracer.Start(ctx, "Property", trace.WithAttributes(
		attribute.String("serial", serial),
	))
	defer span.End()

	link, err := c.client.DetailURL(serial)
	if err != nil {
		return records.Property{}, err
	}
	prop, err := c.property(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get property")
		return records.Property{}, err
	}
	return prop, nil
}

func (c *Crawler) skip(ctx context.Context, f Failure) Failure {
	slog.WarnContext(ctx, "skipped parcel",
		"street", f.Street,
		"serial", f.Serial,
		"link", f.Link,
		"kind", f.Kind,
		"err", f.Err,
	)
	parcelCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", string(f.Kind)),
	))
	return f
}

// PropertiesByStreet searches a street and scrapes every parcel it lists.
// Parcels that cannot be fetched or parsed are reported as failures and do
// not stop the crawl, the returned error is reserved for pagination failures
// and cancellation.
func (c *Crawler) PropertiesByStreet(ctx context.Context, street, city string) ([]records.Property, []Failure, error) {
	ctx, span := tracer.Start(ctx, "PropertiesByStreet", trace.WithAttributes(
		attribute.String("street", street),
	))
	defer span.End()

	links, err := c.SearchStreet(ctx, street, city)
	if err != nil {
		return nil, nil, err
	}

	props := []records.Property{}
	var failures []Failure
	for i, link := range links {
		serial, err := SerialFromLink(link)
		if err != nil {
			failures = append(failures, c.skip(ctx, Failure{
				Street: street,
				Link:   link,
				Kind:   Classify(err),
				Err:    err,
			}))
			continue
		}

		err = c.limiter.Wait(ctx)
		if err != nil {
			return props, failures, err
		}

		prop, err := c.Property(ctx, serial)
		if ctx.Err() != nil {
			return props, failures, ctx.Err()
		}
		if err != nil {
			failures = append(failures, c.skip(ctx, Failure{
				Street: street,
				Serial: serial,
				Link:   link,
				Kind:   Classify(err),
				Err:    err,
			}))
			continue
		}

		parcelCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
		slog.InfoContext(ctx, "parcel",
			"street", street,
			"n", fmt.Sprintf("%d/%d", i+1, len(links)),
			"serial", serial,
			"address", prop.Address,
		)
		props = append(props, prop)
	}

	span.SetAttributes(
		attribute.Int("properties", len(props)),
		attribute.Int("failures", len(failures)),
	)
	return props, failures, nil
}
