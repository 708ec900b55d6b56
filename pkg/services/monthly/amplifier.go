package monthly

import (
	"fmt"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

// Amplifier resolves the fixed monthly narrative for a life area and
// appends the amplification clause when the month's ruling body matches the
// profile's active period. Total and deterministic.
type Amplifier struct {
	lib *content.Library
}

func NewAmplifier(lib *content.Library) *Amplifier {
	return &Amplifier{lib: lib}
}

// MonthName returns the display name for a calendar month (1..12).
func (a *Amplifier) MonthName(month int) string {
	return a.lib.Months[month-1].Name
}

// Ruler returns the fixed ruling body for a calendar month (1..12).
func (a *Amplifier) Ruler(month int) domain.Body {
	return a.lib.Months[month-1].Ruler
}

// Narrative composes one life area's text for one month. When the profile's
// period label references the month's ruler, the area's amplification
// sentence is appended, naming the month.
func (a *Amplifier) Narrative(area domain.Domain, p domain.Profile, month int) string {
	entry := a.lib.Domains[area]
	base := entry.Monthly[month-1]
	if domain.References(p.Dasha, a.Ruler(month)) {
		base += " " + fmt.Sprintf(entry.Amplify, a.MonthName(month))
	}
	return base
}
