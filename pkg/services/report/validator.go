package report

import (
	"time"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

// ValidateProfile runs every required-field check and returns the complete
// violation list, never stopping at the first failure. An empty result
// means the profile is ready for generation.
func ValidateProfile(p domain.Profile) []domain.Violation {
	var violations []domain.Violation

	if p.DateOfBirth == "" {
		violations = append(violations, domain.Violation{
			Field: "dateOfBirth", Message: "date of birth is required",
		})
	} else if _, err := time.Parse(domain.DateLayout, p.DateOfBirth); err != nil {
		violations = append(violations, domain.Violation{
			Field: "dateOfBirth", Message: "date of birth must use the YYYY-MM-DD format",
		})
	}
	if p.SunSign == "" {
		violations = append(violations, domain.Violation{
			Field: "sunSign", Message: "sun sign is required",
		})
	}
	if p.MoonSign == "" {
		violations = append(violations, domain.Violation{
			Field: "moonSign", Message: "moon sign is required",
		})
	}
	if p.Ascendant == "" {
		violations = append(violations, domain.Violation{
			Field: "ascendant", Message: "ascendant is required",
		})
	}
	if p.Dasha == "" {
		violations = append(violations, domain.Violation{
			Field: "dasha", Message: "current planetary period label is required",
		})
	}
	if p.AnchorYear <= 0 {
		violations = append(violations, domain.Violation{
			Field: "anchorYear", Message: "anchor year is required",
		})
	}
	if len(p.Houses) == 0 {
		violations = append(violations, domain.Violation{
			Field: "houses", Message: "house placements are required",
		})
	}
	if len(p.Signs) == 0 {
		violations = append(violations, domain.Violation{
			Field: "signs", Message: "sign placements are required",
		})
	}

	return violations
}
