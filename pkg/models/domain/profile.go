package domain

import (
	"strings"
	"time"
)

// Body is one of the nine classical celestial bodies tracked by a chart.
type Body string

const (
	BodySun     Body = "sun"
	BodyMoon    Body = "moon"
	BodyMars    Body = "mars"
	BodyMercury Body = "mercury"
	BodyJupiter Body = "jupiter"
	BodyVenus   Body = "venus"
	BodySaturn  Body = "saturn"
	BodyRahu    Body = "rahu"
	BodyKetu    Body = "ketu"
)

// Bodies lists the nine bodies in canonical order. All serialization and
// rule scanning iterates in this order so output stays reproducible.
var Bodies = []Body{
	BodySun, BodyMoon, BodyMars, BodyMercury, BodyJupiter,
	BodyVenus, BodySaturn, BodyRahu, BodyKetu,
}

// bodyAliases maps each body to the name variants that may appear in a
// free-text dasha label. The English name always comes first.
var bodyAliases = map[Body][]string{
	BodySun:     {"sun", "surya"},
	BodyMoon:    {"moon", "chandra"},
	BodyMars:    {"mars", "mangal"},
	BodyMercury: {"mercury", "budh"},
	BodyJupiter: {"jupiter", "guru", "brihaspati"},
	BodyVenus:   {"venus", "shukra"},
	BodySaturn:  {"saturn", "shani"},
	BodyRahu:    {"rahu"},
	BodyKetu:    {"ketu"},
}

// MatchBody scans a period label against the nine bodies in canonical order
// and returns the first one it references. The boolean is false when the
// label names no known body.
func MatchBody(label string) (Body, bool) {
	lower := strings.ToLower(label)
	for _, b := range Bodies {
		for _, alias := range bodyAliases[b] {
			if strings.Contains(lower, alias) {
				return b, true
			}
		}
	}
	return "", false
}

// References reports whether a period label mentions the given body under
// any of its known aliases.
func References(label string, body Body) bool {
	lower := strings.ToLower(label)
	for _, alias := range bodyAliases[body] {
		if strings.Contains(lower, alias) {
			return true
		}
	}
	return false
}

// DateLayout is the wire format for birth dates.
const DateLayout = "2006-01-02"

// Profile is the normalized astrological input the engine consumes. It is
// assumed already resolved by the upstream chart provider; the engine never
// computes planetary positions itself.
type Profile struct {
	FullName    string
	DateOfBirth string // YYYY-MM-DD
	SunSign     string
	MoonSign    string
	Ascendant   string
	Houses      map[Body]int    // body -> house 1..12
	Signs       map[Body]string // body -> zodiac sign
	Dasha       string          // free-text current planetary period label
	AnchorYear  int             // first year the report covers
}

// BirthDate parses the profile's date of birth.
func (p Profile) BirthDate() (time.Time, error) {
	return time.Parse(DateLayout, p.DateOfBirth)
}
