package scrape

import (
	"encoding/base64"
	"net/url"
)

// DecodePlayerID recovers a player's stable ID from a profile link. The
// portal base64-encodes the ID in the "p" query parameter; links without
// one (or with a value that is not base64) fall back to the raw parameter,
// and links with no parameter at all yield "N/A" to match the source data.
func DecodePlayerID(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return "N/A"
	}
	encoded := u.Query().Get("p")
	if encoded == "" {
		return "N/A"
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	return string(decoded)
}
