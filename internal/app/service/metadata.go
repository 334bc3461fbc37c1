package service

import (
	"time"

	"github.com/atinyakov/go-submission-handler/internal/models"
)

// Fallback values for headers the client did not send.
const (
	Unknown     = "Unknown"
	DirectVisit = "Direct visit"
)

// TimestampLayout renders UTC time with millisecond precision and a Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// clientIPHeaders are consulted in order; the first non-empty value wins.
var clientIPHeaders = []string{
	"x-nf-client-connection-ip",
	"client-ip",
	"x-forwarded-for",
}

// ExtractMetadata derives submission metadata from request headers.
func ExtractMetadata(h models.Headers, now time.Time) models.Metadata {
	return models.Metadata{
		Timestamp: now.UTC().Format(TimestampLayout),
		IP:        firstHeader(h, clientIPHeaders, Unknown),
		UserAgent: headerOr(h, "user-agent", Unknown),
		Referrer:  headerOr(h, "referer", DirectVisit),
		Language:  headerOr(h, "accept-language", Unknown),
		Country:   headerOr(h, "x-country", Unknown),
		Accept:    optionalHeader(h, "accept"),
		Encoding:  optionalHeader(h, "accept-encoding"),
	}
}

func firstHeader(h models.Headers, names []string, fallback string) string {
	for _, name := range names {
		if v := h.Get(name); v != "" {
			return v
		}
	}
	return fallback
}

// optionalHeader returns nil only when name is absent.
func optionalHeader(h models.Headers, name string) *string {
	v, ok := h.Lookup(name)
	if !ok {
		return nil
	}
	return &v
}

func headerOr(h models.Headers, name, fallback string) string {
	return firstHeader(h, []string{name}, fallback)
}
