package landrecords

import (
	"bufio"
	"context"
	"fmt"
	"landrecords/lib/records"
	"os"
	"strings"
)

// Checkpointer persists the collection gathered so far.
type Checkpointer interface {
	Save(props []records.Property) error
}

type BatchResult struct {
	// number of streets fully crawled
	Streets    int
	Properties []records.Property
	Failures   []Failure
}

// SearchStreetList crawls streets one after another. After each street the
// whole collection is handed to checkpoint (if not nil), so an interrupted run
// keeps every street that finished. An error from pagination or from the
// checkpoint stops the batch, the result still holds the completed streets.
func (c *Crawler) SearchStreetList(ctx context.Context, streets []string, city string, checkpoint Checkpointer) (BatchResult, error) {
	ctx, span := tracer.Start(ctx, "SearchStreetList")
	defer span.End()

	result := BatchResult{Properties: []records.Property{}}
	for _, street := range streets {
		props, failures, err := c.PropertiesByStreet(ctx, street, city)
		if err != nil {
			return result, err
		}
		result.Streets++
		result.Properties = append(result.Properties, props...)
		result.Failures = append(result.Failures, failures...)

		if checkpoint == nil {
			continue
		}
		err = checkpoint.Save(result.Properties)
		if err != nil {
			return result, fmt.Errorf("checkpoint after %q: %w", street, err)
		}
	}
	return result, nil
}

// StreetsFromFile reads one street name per line, ignoring blank lines.
func StreetsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var streets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		street := strings.TrimSpace(scanner.Text())
		if street == "" {
			continue
		}
		streets = append(streets, street)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return streets, nil
}
