package geoip

import (
	"errors"
	"testing"
)

func TestFormatCity(t *testing.T) {
	tests := []struct {
		name, region, want string
	}{
		{"New York", "ny", "New York, NY"},
		{" Phoenix ", "AZ", "Phoenix, AZ"},
		{"Paris", "", "Paris"},
		{"", "CA", ""},
	}
	for _, tc := range tests {
		if got := FormatCity(tc.name, tc.region); got != tc.want {
			t.Fatalf("FormatCity(%q, %q) = %q, want %q", tc.name, tc.region, got, tc.want)
		}
	}
}

func TestNilResolverIsUnavailable(t *testing.T) {
	r, err := NewResolver("  ")
	if err != nil || r != nil {
		t.Fatalf("NewResolver(empty) = %v, %v; want nil, nil", r, err)
	}
	if _, err := r.City("203.0.113.4"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("City on nil resolver = %v, want ErrUnavailable", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on nil resolver = %v", err)
	}
}

func TestNewResolverMissingFile(t *testing.T) {
	if _, err := NewResolver("/nonexistent/GeoLite2-City.mmdb"); err == nil {
		t.Fatalf("expected error for missing database")
	}
}
