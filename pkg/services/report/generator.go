package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/cosmo-tools/astro-atlas/pkg/services/numerology"
)

// SupportedDurations lists the report lengths, in years, the engine offers.
var SupportedDurations = []int{1, 3, 5}

// Generator is the engine's top-level entry point: it fans the year builder
// across the target years, groups five-year runs into phases and attaches
// the whole-profile numerology and compatibility summary.
type Generator struct {
	lib     *content.Library
	builder *Builder
	numbers *numerology.Calculator
	now     func() time.Time
}

func NewGenerator(lib *content.Library) *Generator {
	return &Generator{
		lib:     lib,
		builder: NewBuilder(lib),
		numbers: numerology.NewCalculator(lib),
		now:     time.Now,
	}
}

// Generate builds the full report for a validated profile. The only error
// case is an unsupported duration; a validated profile itself cannot fail.
func (g *Generator) Generate(p domain.Profile, durationYears int) (domain.AstrologyReport, error) {
	if !durationSupported(durationYears) {
		return domain.AstrologyReport{}, fmt.Errorf("unsupported report duration: %d years", durationYears)
	}

	years := make([]int, 0, durationYears)
	for i := 0; i < durationYears; i++ {
		years = append(years, p.AnchorYear+i)
	}

	yearly := make([]domain.YearlyReport, 0, len(years))
	for _, year := range years {
		yearly = append(yearly, g.builder.BuildYear(p, year))
	}

	report := domain.AstrologyReport{
		Duration:      durationLabel(durationYears),
		Years:         years,
		Yearly:        yearly,
		GeneratedAt:   g.now().UTC(),
		Disclaimer:    g.lib.Disclaimer,
		Numerology:    g.numbers.ForProfile(p),
		Compatibility: g.compatibility(p.SunSign),
	}
	if durationYears == 5 {
		report.Phases = phases(yearly)
	}
	return report, nil
}

// phases partitions five yearly reports into the fixed 2+2+1 grouping.
func phases(yearly []domain.YearlyReport) []domain.ReportPhase {
	return []domain.ReportPhase{
		phase("Setup", yearly[0:2]),
		phase("Growth", yearly[2:4]),
		phase("Consolidation", yearly[4:5]),
	}
}

func phase(name string, yearly []domain.YearlyReport) domain.ReportPhase {
	years := make([]int, 0, len(yearly))
	themes := make([]string, 0, len(yearly))
	for _, y := range yearly {
		years = append(years, y.Year)
		themes = append(themes, string(y.Theme.Archetype))
	}
	var summary string
	if len(years) == 1 {
		summary = fmt.Sprintf("%s: %d closes the cycle under a %s theme.", name, years[0], themes[0])
	} else {
		summary = fmt.Sprintf("%s: %d and %d move you through %s.",
			name, years[0], years[1], strings.Join(themes, " and "))
	}
	return domain.ReportPhase{Name: name, Years: years, Summary: summary}
}

func (g *Generator) compatibility(sunSign string) domain.Compatibility {
	key := strings.ToLower(strings.TrimSpace(sunSign))
	entry, ok := g.lib.Compatibility[key]
	if !ok {
		return domain.Compatibility{
			Sign:    sunSign,
			Summary: "Compatibility readings are available once your sun sign is recognised.",
		}
	}
	return domain.Compatibility{
		Sign:    sunSign,
		Friends: entry.Friends,
		Enemies: entry.Enemies,
		Summary: entry.Summary,
	}
}

func durationSupported(years int) bool {
	for _, d := range SupportedDurations {
		if d == years {
			return true
		}
	}
	return false
}

func durationLabel(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
