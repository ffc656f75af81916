package landrecords

import (
	"landrecords/lib/chrono"
	"time"
)

const (
	DefaultBaseUrl = "http://www.utahcounty.gov/"
	DefaultCity    = "PROVO"
	DefaultDelay   = 500 * time.Millisecond
)

// Config is the contents of landrecords.json5.
type Config struct {
	BaseUrl string `json:"base_url"`
	City    string `json:"city"`
	// pause between parcel detail requests
	DelayMs int `json:"delay_ms"`
	// 0 leaves the transport default in place
	TimeoutMs int `json:"timeout_ms"`
	// location used to decide what "today" is when filtering documents
	Timezone string `json:"timezone"`
	Schema   Schema `json:"schema"`
}

func DefaultConfig() Config {
	return Config{
		BaseUrl:  DefaultBaseUrl,
		City:     DefaultCity,
		DelayMs:  int(DefaultDelay / time.Millisecond),
		Timezone: chrono.DefaultLocation,
		Schema:   DefaultSchema(),
	}
}

func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
