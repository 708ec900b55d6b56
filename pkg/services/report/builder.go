package report

import (
	"fmt"
	"strings"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/cosmo-tools/astro-atlas/pkg/services/monthly"
	"github.com/cosmo-tools/astro-atlas/pkg/services/numerology"
	"github.com/cosmo-tools/astro-atlas/pkg/services/rules"
	"github.com/cosmo-tools/astro-atlas/pkg/services/theme"
)

// Builder composes one calendar year's full report from the per-area rule
// evaluators, the theme selector, the numerology calculator and the monthly
// amplifier. Stateless after construction.
type Builder struct {
	lib        *content.Library
	themes     *theme.Selector
	numbers    *numerology.Calculator
	amplifier  *monthly.Amplifier
	evaluators map[domain.Domain]*rules.Evaluator
}

func NewBuilder(lib *content.Library) *Builder {
	return &Builder{
		lib:        lib,
		themes:     theme.NewSelector(lib),
		numbers:    numerology.NewCalculator(lib),
		amplifier:  monthly.NewAmplifier(lib),
		evaluators: rules.Evaluators(lib),
	}
}

// BuildYear assembles a YearlyReport for one target year.
func (b *Builder) BuildYear(p domain.Profile, year int) domain.YearlyReport {
	yearTheme := b.themes.Resolve(year, p.Dasha)
	nums := b.numbers.ForYear(p, year)

	forecasts := make(map[domain.Domain]domain.DomainForecast, len(domain.Domains))
	for _, area := range domain.Domains {
		ev := b.evaluators[area]
		result := ev.Evaluate(p, year, nums.PersonalYear)
		narrative := strings.Join(result.Blocks, " ")
		if narrative == "" {
			narrative = ev.Fallback()
		}
		forecasts[area] = domain.DomainForecast{
			Narrative: narrative,
			Strength:  result.Strength,
		}
	}

	tones := b.lib.Themes[yearTheme.Archetype].MonthlyTones
	months := make([]domain.MonthlyPrediction, 0, 12)
	for m := 1; m <= 12; m++ {
		byArea := make(map[domain.Domain]string, len(domain.Domains))
		for _, area := range domain.Domains {
			byArea[area] = b.amplifier.Narrative(area, p, m)
		}
		months = append(months, domain.MonthlyPrediction{
			Month:     m,
			Name:      b.amplifier.MonthName(m),
			Forecasts: byArea,
			Tone:      tones[m-1],
		})
	}

	return domain.YearlyReport{
		Year:       year,
		Theme:      yearTheme,
		Overview:   fmt.Sprintf("%d unfolds as a %s year for you. %s", year, yearTheme.Archetype, yearTheme.Overview),
		Forecasts:  forecasts,
		Advice:     b.advice(p, yearTheme.Archetype),
		Numerology: nums,
		Months:     months,
	}
}

// advice joins the theme's advice sentences and, when the period label names
// a known body, appends that body's period-specific sentence.
func (b *Builder) advice(p domain.Profile, archetype domain.Archetype) string {
	parts := append([]string{}, b.lib.Themes[archetype].Advice...)
	if body, ok := domain.MatchBody(p.Dasha); ok {
		if extra, found := b.lib.PeriodAdvice[body]; found {
			parts = append(parts, extra)
		}
	}
	return strings.Join(parts, " ")
}
