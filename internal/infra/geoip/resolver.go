package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// ErrUnavailable is returned when the resolver is not initialized.
var ErrUnavailable = errors.New("geoip resolver unavailable")

// CityResolver resolves a visitor's city from an IP address, formatted as
// "City, ST" (subdivision ISO code) the way the city selector lists them.
type CityResolver interface {
	City(ip string) (string, error)
}

// Resolver provides city lookups backed by a MaxMind GeoIP2/GeoLite2 City database.
type Resolver struct {
	reader *geoip2.Reader
}

// NewResolver opens the GeoIP database at the given path. When the path is empty, nil is returned.
func NewResolver(path string) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// City returns "City, ST" for the provided IP, or "" when the database has no city.
func (r *Resolver) City(ip string) (string, error) {
	if r == nil || r.reader == nil {
		return "", ErrUnavailable
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("geoip: invalid ip %q", ip)
	}
	record, err := r.reader.City(parsed)
	if err != nil {
		return "", fmt.Errorf("geoip: lookup city: %w", err)
	}
	if record == nil {
		return "", nil
	}
	region := ""
	if len(record.Subdivisions) > 0 {
		region = record.Subdivisions[0].IsoCode
	}
	return FormatCity(record.City.Names["en"], region), nil
}

// FormatCity joins a city name and region code the way the site lists cities.
func FormatCity(name, region string) string {
	name = strings.TrimSpace(name)
	region = strings.ToUpper(strings.TrimSpace(region))
	switch {
	case name == "":
		return ""
	case region == "":
		return name
	}
	return name + ", " + region
}

// Close closes the underlying database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
