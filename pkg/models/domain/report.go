package domain

import "time"

// Domain is one of the five life areas a report narrates.
type Domain string

const (
	DomainCareer  Domain = "career"
	DomainFinance Domain = "finance"
	DomainHealth  Domain = "health"
	DomainFamily  Domain = "family"
	DomainLove    Domain = "love"
)

// Domains lists the five life areas in report order.
var Domains = []Domain{DomainCareer, DomainFinance, DomainHealth, DomainFamily, DomainLove}

// Strength rates how pronounced a domain's signals are for a given year.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// Archetype is one of the five fixed yearly moods.
type Archetype string

const (
	ArchetypeFoundation Archetype = "foundation"
	ArchetypeGrowth     Archetype = "growth"
	ArchetypeIntensity  Archetype = "intensity"
	ArchetypeTransition Archetype = "transition"
	ArchetypeHarvest    Archetype = "harvest"
)

// RuleEvaluationResult is the outcome of running one domain's rule set
// against a profile for a single year. Blocks preserve selection order.
type RuleEvaluationResult struct {
	Blocks   []string
	Strength Strength
}

// YearTheme is the resolved archetype for a calendar year.
type YearTheme struct {
	Year      int
	Archetype Archetype
	Tone      string
	Keywords  []string
	Overview  string
}

// NumerologySummary holds the per-year numerological derivation.
type NumerologySummary struct {
	LifePath     int
	PersonalYear int
	Label        string
	Element      string
	Prediction   string
}

// ProfileNumerology is the whole-profile derivation attached to the final
// report: life path from the birth date, destiny from the full name.
type ProfileNumerology struct {
	LifePath   int
	Destiny    int
	Prediction string
}

// DomainForecast is one domain's narrative for one year.
type DomainForecast struct {
	Narrative string
	Strength  Strength
}

// MonthlyPrediction is one calendar month's breakdown. Forecasts carries
// exactly one narrative per domain.
type MonthlyPrediction struct {
	Month     int // 1..12
	Name      string
	Forecasts map[Domain]string
	Tone      string
}

// YearlyReport is one year's fully composed report. Immutable once built.
type YearlyReport struct {
	Year       int
	Theme      YearTheme
	Overview   string
	Forecasts  map[Domain]DomainForecast
	Advice     string
	Numerology NumerologySummary
	Months     []MonthlyPrediction
}

// ReportPhase groups consecutive years of a five-year report under a name.
type ReportPhase struct {
	Name    string
	Years   []int
	Summary string
}

// Compatibility summarizes friendly and adverse signs for the sun sign.
type Compatibility struct {
	Sign    string
	Friends []string
	Enemies []string
	Summary string
}

// AstrologyReport is the engine's sole externally visible output.
type AstrologyReport struct {
	Duration      string // "1 year", "3 years", "5 years"
	Years         []int
	Yearly        []YearlyReport
	Phases        []ReportPhase // five-year reports only, else nil
	GeneratedAt   time.Time
	Disclaimer    string
	Numerology    ProfileNumerology
	Compatibility Compatibility
}

// Violation names a required profile field that failed validation.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}
