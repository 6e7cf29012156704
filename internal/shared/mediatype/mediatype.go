// Package mediatype turns the Accept header into a small enumerated
// content variant, so handlers branch explicitly instead of relying on
// framework content negotiation.
package mediatype

import (
	"fmt"
	"mime"
	"strings"
)

// Variant selects the representation a handler should produce.
type Variant struct {
	// Full selects the full DTO (all entity fields) instead of the
	// friendly one. Only single-author GET honors it.
	Full bool
	// HATEOAS embeds a links array in the response body.
	HATEOAS bool
}

const (
	hateoasType     = "application/vnd.marvin.hateoas+json"
	fullType        = "application/vnd.marvin.author.full+json"
	fullHateoasType = "application/vnd.marvin.author.full.hateoas+json"
)

// ParseAccept inspects the Accept header. Vendor types select their
// variant; anything else parseable falls back to plain JSON. A header
// that cannot be parsed at all is a client error.
func ParseAccept(header string) (Variant, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Variant{}, nil
	}

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		mediaType, _, err := mime.ParseMediaType(part)
		if err != nil {
			return Variant{}, fmt.Errorf("invalid Accept header %q: %w", part, err)
		}

		switch mediaType {
		case hateoasType:
			return Variant{HATEOAS: true}, nil
		case fullType:
			return Variant{Full: true}, nil
		case fullHateoasType:
			return Variant{Full: true, HATEOAS: true}, nil
		}
	}

	return Variant{}, nil
}
