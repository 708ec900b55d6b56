package monthly

import (
	"testing"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAmplifier(t *testing.T) *Amplifier {
	t.Helper()
	lib, err := content.Load()
	require.NoError(t, err)
	return NewAmplifier(lib)
}

func TestMonthTable(t *testing.T) {
	a := newAmplifier(t)
	assert.Equal(t, "January", a.MonthName(1))
	assert.Equal(t, "December", a.MonthName(12))
	assert.Equal(t, domain.BodySaturn, a.Ruler(1))
	assert.Equal(t, domain.BodySun, a.Ruler(8))
}

func TestNarrative_AmplifiesOnRulerMatch(t *testing.T) {
	a := newAmplifier(t)
	p := domain.Profile{Dasha: "Saturn Mahadasha"}

	// January is ruled by Saturn: the base narrative gains the
	// amplification clause, which names the month.
	january := a.Narrative(domain.DomainCareer, p, 1)
	assert.Contains(t, january, "January")
	assert.Greater(t, len(january), len("January"))

	base := a.Narrative(domain.DomainCareer, domain.Profile{Dasha: "Venus Mahadasha"}, 1)
	assert.Greater(t, len(january), len(base))
}

func TestNarrative_BaseOnlyWithoutMatch(t *testing.T) {
	a := newAmplifier(t)
	lib, err := content.Load()
	require.NoError(t, err)

	// June is ruled by Mercury; a Saturn period leaves it unamplified.
	p := domain.Profile{Dasha: "Saturn Mahadasha"}
	assert.Equal(t, lib.Domains[domain.DomainFinance].Monthly[5],
		a.Narrative(domain.DomainFinance, p, 6))
}

func TestNarrative_Deterministic(t *testing.T) {
	a := newAmplifier(t)
	p := domain.Profile{Dasha: "Guru Mahadasha"}

	for m := 1; m <= 12; m++ {
		for _, area := range domain.Domains {
			first := a.Narrative(area, p, m)
			second := a.Narrative(area, p, m)
			assert.Equal(t, first, second)
			assert.NotEmpty(t, first)
		}
	}
}
