package api

// Profile is the wire form of the normalized astrological input. House and
// sign placements are keyed by the lowercase body name (sun, moon, mars,
// mercury, jupiter, venus, saturn, rahu, ketu).
type Profile struct {
	FullName    string            `json:"fullName" yaml:"full_name" mapstructure:"full_name"`
	DateOfBirth string            `json:"dateOfBirth" yaml:"date_of_birth" mapstructure:"date_of_birth"`
	SunSign     string            `json:"sunSign" yaml:"sun_sign" mapstructure:"sun_sign"`
	MoonSign    string            `json:"moonSign" yaml:"moon_sign" mapstructure:"moon_sign"`
	Ascendant   string            `json:"ascendant" yaml:"ascendant" mapstructure:"ascendant"`
	Houses      map[string]int    `json:"houses" yaml:"houses" mapstructure:"houses"`
	Signs       map[string]string `json:"signs" yaml:"signs" mapstructure:"signs"`
	Dasha       string            `json:"dasha" yaml:"dasha" mapstructure:"dasha"`
	AnchorYear  int               `json:"anchorYear" yaml:"anchor_year" mapstructure:"anchor_year"`
}

// GenerateReportRequest is the body of POST /api/v1/reports.
type GenerateReportRequest struct {
	Profile  Profile `json:"profile"`
	Duration int     `json:"duration"` // years: 1, 3 or 5
}

// Violation mirrors a single validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateProfileResponse is the body of POST /api/v1/reports/validate.
type ValidateProfileResponse struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// CacheKeyResponse is the body of POST /api/v1/reports/key.
type CacheKeyResponse struct {
	Key string `json:"key"`
}
