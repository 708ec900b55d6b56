package api

import "time"

type YearTheme struct {
	Year      int      `json:"year"`
	Archetype string   `json:"archetype"`
	Tone      string   `json:"tone"`
	Keywords  []string `json:"keywords"`
	Overview  string   `json:"overview"`
}

type NumerologySummary struct {
	LifePath     int    `json:"lifePath"`
	PersonalYear int    `json:"personalYear"`
	Label        string `json:"label"`
	Element      string `json:"element"`
	Prediction   string `json:"prediction"`
}

type ProfileNumerology struct {
	LifePath   int    `json:"lifePath"`
	Destiny    int    `json:"destiny"`
	Prediction string `json:"prediction"`
}

type DomainForecast struct {
	Narrative string `json:"narrative"`
	Strength  string `json:"strength"`
}

type MonthlyPrediction struct {
	Month     int               `json:"month"`
	Name      string            `json:"name"`
	Forecasts map[string]string `json:"forecasts"`
	Tone      string            `json:"tone"`
}

type YearlyReport struct {
	Year       int                       `json:"year"`
	Theme      YearTheme                 `json:"theme"`
	Overview   string                    `json:"overview"`
	Forecasts  map[string]DomainForecast `json:"forecasts"`
	Advice     string                    `json:"advice"`
	Numerology NumerologySummary         `json:"numerology"`
	Months     []MonthlyPrediction       `json:"months"`
}

type ReportPhase struct {
	Name    string `json:"name"`
	Years   []int  `json:"years"`
	Summary string `json:"summary"`
}

type Compatibility struct {
	Sign    string   `json:"sign"`
	Friends []string `json:"friends"`
	Enemies []string `json:"enemies"`
	Summary string   `json:"summary"`
}

type AstrologyReport struct {
	Duration      string            `json:"duration"`
	Years         []int             `json:"years"`
	Yearly        []YearlyReport    `json:"yearly"`
	Phases        []ReportPhase     `json:"phases,omitempty"`
	GeneratedAt   time.Time         `json:"generatedAt"`
	Disclaimer    string            `json:"disclaimer"`
	Numerology    ProfileNumerology `json:"numerology"`
	Compatibility Compatibility     `json:"compatibility"`
}
