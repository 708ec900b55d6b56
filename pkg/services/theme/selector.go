package theme

import (
	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

// Selector maps a calendar year to one of the five yearly archetypes and
// applies the period-label overrides. Total: every year resolves to exactly
// one archetype.
type Selector struct {
	lib *content.Library
}

func NewSelector(lib *content.Library) *Selector {
	return &Selector{lib: lib}
}

// ReduceYear collapses a year to its single-digit root, e.g. 2028 -> 12 -> 3.
func ReduceYear(year int) int {
	if year < 1 {
		return 1
	}
	for year > 9 {
		sum := 0
		for year > 0 {
			sum += year % 10
			year /= 10
		}
		year = sum
	}
	return year
}

func archetypeForDigit(digit int) domain.Archetype {
	switch digit {
	case 2, 4, 7:
		return domain.ArchetypeFoundation
	case 1, 3:
		return domain.ArchetypeGrowth
	case 8:
		return domain.ArchetypeIntensity
	case 5:
		return domain.ArchetypeTransition
	case 6, 9:
		return domain.ArchetypeHarvest
	default:
		return domain.ArchetypeFoundation
	}
}

// applyOverrides adjusts the base archetype by the current planetary period.
// Saturn hardens growth and harvest years, Jupiter softens intensity, the
// lunar nodes unsettle foundation years, and Mars escalates growth.
func applyOverrides(base domain.Archetype, dasha string) domain.Archetype {
	if domain.References(dasha, domain.BodySaturn) &&
		(base == domain.ArchetypeGrowth || base == domain.ArchetypeHarvest) {
		return domain.ArchetypeIntensity
	}
	if domain.References(dasha, domain.BodyJupiter) && base == domain.ArchetypeIntensity {
		return domain.ArchetypeHarvest
	}
	if (domain.References(dasha, domain.BodyRahu) || domain.References(dasha, domain.BodyKetu)) &&
		base == domain.ArchetypeFoundation {
		return domain.ArchetypeTransition
	}
	if domain.References(dasha, domain.BodyMars) && base == domain.ArchetypeGrowth {
		return domain.ArchetypeIntensity
	}
	return base
}

// Resolve returns the theme for one calendar year under the given period
// label, with the archetype's fixed tone, keywords and overview attached.
func (s *Selector) Resolve(year int, dasha string) domain.YearTheme {
	archetype := applyOverrides(archetypeForDigit(ReduceYear(year)), dasha)
	entry := s.lib.Themes[archetype]
	return domain.YearTheme{
		Year:      year,
		Archetype: archetype,
		Tone:      entry.Tone,
		Keywords:  entry.Keywords,
		Overview:  entry.Overview,
	}
}
