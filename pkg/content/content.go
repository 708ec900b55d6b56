package content

import (
	"embed"
	"fmt"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

//go:embed assets/*.yaml assets/domains/*.yaml
var assets embed.FS

// ThemeEntry is one yearly archetype's editorial content.
type ThemeEntry struct {
	Tone         string   `yaml:"tone"`
	Keywords     []string `yaml:"keywords"`
	Overview     string   `yaml:"overview"`
	Advice       []string `yaml:"advice"`
	MonthlyTones []string `yaml:"monthly_tones"` // 12 entries, January first
}

// PersonalYearEntry is the numerological content for one personal year digit.
type PersonalYearEntry struct {
	Label      string `yaml:"label"`
	Element    string `yaml:"element"`
	Prediction string `yaml:"prediction"`
}

// Numerology groups the numerological content tables.
type Numerology struct {
	PersonalYears map[int]PersonalYearEntry `yaml:"personal_years"`
	LifePaths     map[int]string            `yaml:"life_paths"`
}

// MonthEntry names a calendar month and its ruling body.
type MonthEntry struct {
	Name  string      `yaml:"name"`
	Ruler domain.Body `yaml:"ruler"`
}

// HouseRule appends a narrative when a body occupies one of the listed houses.
type HouseRule struct {
	Body      domain.Body `yaml:"body"`
	Houses    []int       `yaml:"houses"`
	Narrative string      `yaml:"narrative"`
	Strong    bool        `yaml:"strong"`
}

// SignRule appends a narrative when a body sits in a specific zodiac sign.
type SignRule struct {
	Body      domain.Body `yaml:"body"`
	Sign      string      `yaml:"sign"`
	Narrative string      `yaml:"narrative"`
}

// DomainEntry is the full content table set for one life area.
type DomainEntry struct {
	Fallback     string                 `yaml:"fallback"`
	StrongBodies []domain.Body          `yaml:"strong_bodies"`
	PersonalYear map[int]string         `yaml:"personal_year"`
	Periods      map[domain.Body]string `yaml:"periods"`
	HouseRules   []HouseRule            `yaml:"house_rules"`
	SignRules    []SignRule             `yaml:"sign_rules"`
	Monthly      []string               `yaml:"monthly"` // 12 entries, January first
	Amplify      string                 `yaml:"amplify"` // fmt template, %s = month name
}

// CompatibilityEntry lists friendly and adverse signs for one sun sign.
type CompatibilityEntry struct {
	Friends []string `yaml:"friends"`
	Enemies []string `yaml:"enemies"`
	Summary string   `yaml:"summary"`
}

// Library is the loaded, validated content set the engine reads from.
// It is immutable after Load.
type Library struct {
	Themes        map[domain.Archetype]ThemeEntry
	Numerology    Numerology
	Months        []MonthEntry // index 0 = January
	Domains       map[domain.Domain]DomainEntry
	Compatibility map[string]CompatibilityEntry
	PeriodAdvice  map[domain.Body]string
	Disclaimer    string
}

type generalFile struct {
	PeriodAdvice map[domain.Body]string `yaml:"period_advice"`
	Disclaimer   string                 `yaml:"disclaimer"`
}

type monthsFile struct {
	Months []MonthEntry `yaml:"months"`
}

// Load parses the embedded content assets into a Library and verifies the
// completeness guarantees the engine relies on.
func Load() (*Library, error) {
	lib := &Library{
		Themes:        map[domain.Archetype]ThemeEntry{},
		Domains:       map[domain.Domain]DomainEntry{},
		Compatibility: map[string]CompatibilityEntry{},
	}

	if err := readYAML("assets/themes.yaml", &lib.Themes); err != nil {
		return nil, err
	}
	if err := readYAML("assets/numerology.yaml", &lib.Numerology); err != nil {
		return nil, err
	}

	var months monthsFile
	if err := readYAML("assets/months.yaml", &months); err != nil {
		return nil, err
	}
	lib.Months = months.Months

	if err := readYAML("assets/compatibility.yaml", &lib.Compatibility); err != nil {
		return nil, err
	}

	var general generalFile
	if err := readYAML("assets/general.yaml", &general); err != nil {
		return nil, err
	}
	lib.PeriodAdvice = general.PeriodAdvice
	lib.Disclaimer = general.Disclaimer

	for _, d := range domain.Domains {
		var entry DomainEntry
		if err := readYAML(fmt.Sprintf("assets/domains/%s.yaml", d), &entry); err != nil {
			return nil, err
		}
		lib.Domains[d] = entry
	}

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func readYAML(path string, out any) error {
	data, err := assets.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content asset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse content asset %s: %w", path, err)
	}
	return nil
}

func (l *Library) validate() error {
	archetypes := []domain.Archetype{
		domain.ArchetypeFoundation, domain.ArchetypeGrowth, domain.ArchetypeIntensity,
		domain.ArchetypeTransition, domain.ArchetypeHarvest,
	}
	for _, a := range archetypes {
		entry, ok := l.Themes[a]
		if !ok {
			return fmt.Errorf("themes: missing archetype %q", a)
		}
		if len(entry.MonthlyTones) != 12 {
			return fmt.Errorf("themes: archetype %q has %d monthly tones, want 12", a, len(entry.MonthlyTones))
		}
		if len(entry.Advice) == 0 {
			return fmt.Errorf("themes: archetype %q has no advice", a)
		}
	}

	for n := 1; n <= 9; n++ {
		if _, ok := l.Numerology.PersonalYears[n]; !ok {
			return fmt.Errorf("numerology: missing personal year %d", n)
		}
		if _, ok := l.Numerology.LifePaths[n]; !ok {
			return fmt.Errorf("numerology: missing life path %d", n)
		}
	}

	if len(l.Months) != 12 {
		return fmt.Errorf("months: have %d entries, want 12", len(l.Months))
	}

	for _, d := range domain.Domains {
		entry := l.Domains[d]
		if entry.Fallback == "" {
			return fmt.Errorf("domain %s: missing fallback narrative", d)
		}
		if len(entry.Monthly) != 12 {
			return fmt.Errorf("domain %s: has %d monthly narratives, want 12", d, len(entry.Monthly))
		}
		if entry.Amplify == "" {
			return fmt.Errorf("domain %s: missing amplification template", d)
		}
		for n := 1; n <= 9; n++ {
			if _, ok := entry.PersonalYear[n]; !ok {
				return fmt.Errorf("domain %s: missing personal year narrative %d", d, n)
			}
		}
		for _, b := range domain.Bodies {
			if _, ok := entry.Periods[b]; !ok {
				return fmt.Errorf("domain %s: missing period narrative for %s", d, b)
			}
		}
	}
	return nil
}
