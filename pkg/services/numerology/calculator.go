package numerology

import (
	"strings"
	"time"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

// Calculator derives numerological figures from a birth date and name,
// using the loaded content library for the prose attached to each number.
type Calculator struct {
	lib *content.Library
}

func NewCalculator(lib *content.Library) *Calculator {
	return &Calculator{lib: lib}
}

// Reduce collapses a non-negative integer to a single digit by repeated
// digit summation. Zero and negative inputs clamp to 1 so callers always
// receive a valid table key.
func Reduce(n int) int {
	if n < 1 {
		return 1
	}
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// LifePath reduces the full birth date (day, month and year) to a single
// digit. An unparseable date yields 1 rather than an error; the engine has
// no failure path and upstream validation already rejects bad dates.
func (c *Calculator) LifePath(dateOfBirth string) int {
	t, err := time.Parse(domain.DateLayout, dateOfBirth)
	if err != nil {
		return 1
	}
	return Reduce(Reduce(t.Day()) + Reduce(int(t.Month())) + Reduce(t.Year()))
}

// PersonalYear derives the profile's number for one target year: birth day
// plus birth month plus the year, each digit-reduced, reduced again.
func (c *Calculator) PersonalYear(dateOfBirth string, year int) int {
	t, err := time.Parse(domain.DateLayout, dateOfBirth)
	if err != nil {
		return Reduce(year)
	}
	return Reduce(Reduce(t.Day()) + Reduce(int(t.Month())) + Reduce(year))
}

// Destiny reduces the letters of a full name under the conventional
// letter-to-digit mapping (a=1 .. i=9, j=1, ...). Non-letters are skipped;
// an empty name yields 1.
func Destiny(fullName string) int {
	sum := 0
	for _, r := range strings.ToLower(fullName) {
		if r < 'a' || r > 'z' {
			continue
		}
		sum += int(r-'a')%9 + 1
	}
	return Reduce(sum)
}

// ForYear assembles the per-year numerology summary for a profile.
func (c *Calculator) ForYear(p domain.Profile, year int) domain.NumerologySummary {
	personalYear := c.PersonalYear(p.DateOfBirth, year)
	entry := c.lib.Numerology.PersonalYears[personalYear]
	return domain.NumerologySummary{
		LifePath:     c.LifePath(p.DateOfBirth),
		PersonalYear: personalYear,
		Label:        entry.Label,
		Element:      entry.Element,
		Prediction:   entry.Prediction,
	}
}

// ForProfile assembles the whole-profile numerology attached to the final
// report.
func (c *Calculator) ForProfile(p domain.Profile) domain.ProfileNumerology {
	lifePath := c.LifePath(p.DateOfBirth)
	return domain.ProfileNumerology{
		LifePath:   lifePath,
		Destiny:    Destiny(p.FullName),
		Prediction: c.lib.Numerology.LifePaths[lifePath],
	}
}
