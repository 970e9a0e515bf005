// Package geoip resolves client IP addresses to ISO country codes using a
// MaxMind GeoLite2/GeoIP2 database. Lookups are optional: a resolver without a
// database returns empty results.
package geoip

import (
	"errors"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

type Resolver struct {
	db     *geoip2.Reader
	logger *slog.Logger
}

// Open loads the database at path. An empty path or a missing file yields a
// disabled resolver, not an error.
func Open(path string, logger *slog.Logger) (*Resolver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{logger: logger}

	if path == "" {
		logger.Debug("GeoIP database path not configured, lookups disabled")
		return r, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info("GeoIP database not found, lookups disabled", "path", path)
		return r, nil
	}

	db, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	r.db = db

	logger.Info("GeoIP database loaded", "path", path)
	return r, nil
}

func (r *Resolver) Enabled() bool {
	return r != nil && r.db != nil
}

// CountryCode returns the upper-case ISO 3166-1 alpha-2 code for ip, or ""
// when the address is unparsable, private, or unknown to the database.
func (r *Resolver) CountryCode(ip string) string {
	if !r.Enabled() {
		return ""
	}

	parsed := net.ParseIP(strings.TrimSpace(ip))
	if !isPublic(parsed) {
		return ""
	}

	rec, err := r.db.Country(parsed)
	if err != nil {
		r.logger.Debug("GeoIP lookup failed", "ip", ip, "error", err)
		return ""
	}
	return strings.ToUpper(rec.Country.IsoCode)
}

func (r *Resolver) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.db.Close()
}

func isPublic(ip net.IP) bool {
	if ip == nil {
		return false
	}
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsMulticast())
}
