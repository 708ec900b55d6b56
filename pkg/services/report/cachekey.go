package report

import (
	"strconv"
	"strings"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

// CacheKey digests the report-relevant profile fields into a short base-36
// token using a rolling 32-bit polynomial hash. Identical inputs always
// produce the same token; any single field change moves it.
func CacheKey(p domain.Profile, durationYears int) string {
	var sb strings.Builder
	sb.WriteString(p.DateOfBirth)
	sb.WriteByte('|')
	sb.WriteString(strings.ToLower(p.SunSign))
	sb.WriteByte('|')
	sb.WriteString(strings.ToLower(p.MoonSign))
	sb.WriteByte('|')
	sb.WriteString(strings.ToLower(p.Ascendant))
	sb.WriteByte('|')
	sb.WriteString(strings.ToLower(p.Dasha))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(p.AnchorYear))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(durationYears))
	for _, body := range domain.Bodies {
		sb.WriteByte('|')
		sb.WriteString(string(body))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(p.Houses[body]))
		sb.WriteByte(':')
		sb.WriteString(strings.ToLower(p.Signs[body]))
	}

	var h uint32
	for _, c := range []byte(sb.String()) {
		h = h*31 + uint32(c)
	}
	return strconv.FormatUint(uint64(h), 36)
}
