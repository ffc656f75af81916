package landrecords

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("landrecords.lib.scrapers.landrecords")
var meter = otel.Meter("landrecords.lib.scrapers.landrecords")

var parcelCounter, _ = meter.Int64Counter(
	"landrecords.parcels",
	metric.WithDescription("parcel detail pages processed, by outcome"),
)
var resultPageCounter, _ = meter.Int64Counter(
	"landrecords.result_pages",
	metric.WithDescription("search result pages fetched"),
)
