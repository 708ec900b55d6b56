package adapters

import (
	"github.com/cosmo-tools/astro-atlas/pkg/models/api"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

func MapProfileApiToDomain(p api.Profile) domain.Profile {
	houses := make(map[domain.Body]int, len(p.Houses))
	for name, house := range p.Houses {
		houses[domain.Body(name)] = house
	}
	signs := make(map[domain.Body]string, len(p.Signs))
	for name, sign := range p.Signs {
		signs[domain.Body(name)] = sign
	}
	return domain.Profile{
		FullName:    p.FullName,
		DateOfBirth: p.DateOfBirth,
		SunSign:     p.SunSign,
		MoonSign:    p.MoonSign,
		Ascendant:   p.Ascendant,
		Houses:      houses,
		Signs:       signs,
		Dasha:       p.Dasha,
		AnchorYear:  p.AnchorYear,
	}
}

func MapViolationDomainToApi(v domain.Violation) api.Violation {
	return api.Violation{Field: v.Field, Message: v.Message}
}

func MapViolationsDomainToApi(violations []domain.Violation) []api.Violation {
	out := make([]api.Violation, 0, len(violations))
	for _, v := range violations {
		out = append(out, MapViolationDomainToApi(v))
	}
	return out
}

func MapYearThemeDomainToApi(t domain.YearTheme) api.YearTheme {
	return api.YearTheme{
		Year:      t.Year,
		Archetype: string(t.Archetype),
		Tone:      t.Tone,
		Keywords:  t.Keywords,
		Overview:  t.Overview,
	}
}

func MapMonthlyPredictionDomainToApi(m domain.MonthlyPrediction) api.MonthlyPrediction {
	forecasts := make(map[string]string, len(m.Forecasts))
	for area, narrative := range m.Forecasts {
		forecasts[string(area)] = narrative
	}
	return api.MonthlyPrediction{
		Month:     m.Month,
		Name:      m.Name,
		Forecasts: forecasts,
		Tone:      m.Tone,
	}
}

func MapYearlyReportDomainToApi(y domain.YearlyReport) api.YearlyReport {
	forecasts := make(map[string]api.DomainForecast, len(y.Forecasts))
	for area, f := range y.Forecasts {
		forecasts[string(area)] = api.DomainForecast{
			Narrative: f.Narrative,
			Strength:  string(f.Strength),
		}
	}
	months := make([]api.MonthlyPrediction, 0, len(y.Months))
	for _, m := range y.Months {
		months = append(months, MapMonthlyPredictionDomainToApi(m))
	}
	return api.YearlyReport{
		Year:      y.Year,
		Theme:     MapYearThemeDomainToApi(y.Theme),
		Overview:  y.Overview,
		Forecasts: forecasts,
		Advice:    y.Advice,
		Numerology: api.NumerologySummary{
			LifePath:     y.Numerology.LifePath,
			PersonalYear: y.Numerology.PersonalYear,
			Label:        y.Numerology.Label,
			Element:      y.Numerology.Element,
			Prediction:   y.Numerology.Prediction,
		},
		Months: months,
	}
}

func MapAstrologyReportDomainToApi(r domain.AstrologyReport) api.AstrologyReport {
	yearly := make([]api.YearlyReport, 0, len(r.Yearly))
	for _, y := range r.Yearly {
		yearly = append(yearly, MapYearlyReportDomainToApi(y))
	}
	var phases []api.ReportPhase
	for _, p := range r.Phases {
		phases = append(phases, api.ReportPhase{
			Name:    p.Name,
			Years:   p.Years,
			Summary: p.Summary,
		})
	}
	return api.AstrologyReport{
		Duration:    r.Duration,
		Years:       r.Years,
		Yearly:      yearly,
		Phases:      phases,
		GeneratedAt: r.GeneratedAt,
		Disclaimer:  r.Disclaimer,
		Numerology: api.ProfileNumerology{
			LifePath:   r.Numerology.LifePath,
			Destiny:    r.Numerology.Destiny,
			Prediction: r.Numerology.Prediction,
		},
		Compatibility: api.Compatibility{
			Sign:    r.Compatibility.Sign,
			Friends: r.Compatibility.Friends,
			Enemies: r.Compatibility.Enemies,
			Summary: r.Compatibility.Summary,
		},
	}
}
