package report

import (
	"strings"
	"testing"
	"time"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	lib, err := content.Load()
	require.NoError(t, err)
	g := NewGenerator(lib)
	g.now = func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }
	return g
}

func testProfile() domain.Profile {
	return domain.Profile{
		FullName:    "Asha Rao",
		DateOfBirth: "1990-05-14",
		SunSign:     "taurus",
		MoonSign:    "cancer",
		Ascendant:   "virgo",
		Houses: map[domain.Body]int{
			domain.BodySun: 1, domain.BodyMoon: 4, domain.BodyMars: 6,
			domain.BodyMercury: 3, domain.BodyJupiter: 2, domain.BodyVenus: 7,
			domain.BodySaturn: 10, domain.BodyRahu: 11, domain.BodyKetu: 8,
		},
		Signs: map[domain.Body]string{
			domain.BodySun: "taurus", domain.BodyMoon: "cancer", domain.BodyMars: "aries",
			domain.BodyMercury: "gemini", domain.BodyJupiter: "sagittarius",
			domain.BodyVenus: "libra", domain.BodySaturn: "capricorn",
			domain.BodyRahu: "gemini", domain.BodyKetu: "sagittarius",
		},
		Dasha:      "Saturn Mahadasha",
		AnchorYear: 2026,
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newGenerator(t)

	first, err := g.Generate(testProfile(), 5)
	require.NoError(t, err)
	second, err := g.Generate(testProfile(), 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_TargetYears(t *testing.T) {
	g := newGenerator(t)

	tests := []struct {
		duration int
		label    string
		years    []int
	}{
		{1, "1 year", []int{2026}},
		{3, "3 years", []int{2026, 2027, 2028}},
		{5, "5 years", []int{2026, 2027, 2028, 2029, 2030}},
	}
	for _, tc := range tests {
		generated, err := g.Generate(testProfile(), tc.duration)
		require.NoError(t, err)
		assert.Equal(t, tc.label, generated.Duration)
		assert.Equal(t, tc.years, generated.Years)
		require.Len(t, generated.Yearly, len(tc.years))
		for i, yearly := range generated.Yearly {
			assert.Equal(t, tc.years[i], yearly.Year)
		}
	}
}

func TestGenerate_UnsupportedDuration(t *testing.T) {
	g := newGenerator(t)
	for _, bad := range []int{0, 2, 4, 6, -1} {
		_, err := g.Generate(testProfile(), bad)
		assert.Error(t, err, "duration %d", bad)
	}
}

func TestGenerate_MonthlyCompleteness(t *testing.T) {
	g := newGenerator(t)
	generated, err := g.Generate(testProfile(), 3)
	require.NoError(t, err)

	for _, yearly := range generated.Yearly {
		require.Len(t, yearly.Months, 12, "year %d", yearly.Year)
		for i, month := range yearly.Months {
			assert.Equal(t, i+1, month.Month)
			assert.NotEmpty(t, month.Name)
			assert.NotEmpty(t, month.Tone)
			require.Len(t, month.Forecasts, 5)
			for area, narrative := range month.Forecasts {
				assert.NotEmpty(t, narrative, "year %d month %d area %s", yearly.Year, month.Month, area)
			}
		}
	}
}

func TestGenerate_PhasePartitioning(t *testing.T) {
	g := newGenerator(t)

	generated, err := g.Generate(testProfile(), 5)
	require.NoError(t, err)
	require.Len(t, generated.Phases, 3)

	assert.Equal(t, "Setup", generated.Phases[0].Name)
	assert.Equal(t, []int{2026, 2027}, generated.Phases[0].Years)
	assert.Equal(t, "Growth", generated.Phases[1].Name)
	assert.Equal(t, []int{2028, 2029}, generated.Phases[1].Years)
	assert.Equal(t, "Consolidation", generated.Phases[2].Name)
	assert.Equal(t, []int{2030}, generated.Phases[2].Years)

	// each summary references its constituent years' theme keys
	for i, phase := range generated.Phases {
		for _, year := range phase.Years {
			assert.NotEmpty(t, phase.Summary, "phase %d", i)
			assert.Contains(t, phase.Summary, phase.Name)
			_ = year
		}
	}
	assert.Contains(t, generated.Phases[2].Summary,
		string(generated.Yearly[4].Theme.Archetype))

	shorter, err := g.Generate(testProfile(), 3)
	require.NoError(t, err)
	assert.Empty(t, shorter.Phases)
}

func TestGenerate_DomainNarrativesNeverEmpty(t *testing.T) {
	g := newGenerator(t)

	// period label matching nothing, no salient placements at all
	sparse := domain.Profile{
		FullName:    "Test Subject",
		DateOfBirth: "2000-01-01",
		SunSign:     "aries",
		MoonSign:    "leo",
		Ascendant:   "libra",
		Dasha:       "Pluto period",
		AnchorYear:  2026,
	}

	generated, err := g.Generate(sparse, 1)
	require.NoError(t, err)
	for area, forecast := range generated.Yearly[0].Forecasts {
		assert.NotEmpty(t, forecast.Narrative, "area %s", area)
		assert.NotEmpty(t, forecast.Strength, "area %s", area)
	}
}

func TestGenerate_ReportMetadata(t *testing.T) {
	g := newGenerator(t)
	generated, err := g.Generate(testProfile(), 1)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), generated.GeneratedAt)
	assert.NotEmpty(t, generated.Disclaimer)
	assert.Equal(t, 2, generated.Numerology.LifePath)
	assert.NotZero(t, generated.Numerology.Destiny)
	assert.NotEmpty(t, generated.Numerology.Prediction)
}

func TestGenerate_Compatibility(t *testing.T) {
	g := newGenerator(t)

	generated, err := g.Generate(testProfile(), 1)
	require.NoError(t, err)
	assert.Equal(t, "taurus", generated.Compatibility.Sign)
	assert.Contains(t, generated.Compatibility.Friends, "virgo")
	assert.Contains(t, generated.Compatibility.Enemies, "leo")
	assert.NotEmpty(t, generated.Compatibility.Summary)

	unknown := testProfile()
	unknown.SunSign = "ophiuchus"
	generated, err = g.Generate(unknown, 1)
	require.NoError(t, err)
	assert.Empty(t, generated.Compatibility.Friends)
	assert.NotEmpty(t, generated.Compatibility.Summary)
}

func TestBuildYear_AdviceComposition(t *testing.T) {
	lib, err := content.Load()
	require.NoError(t, err)
	b := NewBuilder(lib)

	yearly := b.BuildYear(testProfile(), 2026)

	// theme advice sentences plus the saturn period sentence
	for _, sentence := range lib.Themes[yearly.Theme.Archetype].Advice {
		assert.Contains(t, yearly.Advice, sentence)
	}
	assert.Contains(t, yearly.Advice, lib.PeriodAdvice[domain.BodySaturn])

	// 2026 reduces to 1: a growth year, hardened to intensity by saturn
	assert.Equal(t, domain.ArchetypeIntensity, yearly.Theme.Archetype)
	assert.True(t, strings.Contains(yearly.Overview, "2026"))
}

func TestBuildYear_MonthlyTonesFollowTheme(t *testing.T) {
	lib, err := content.Load()
	require.NoError(t, err)
	b := NewBuilder(lib)

	yearly := b.BuildYear(testProfile(), 2026)
	tones := lib.Themes[yearly.Theme.Archetype].MonthlyTones
	for i, month := range yearly.Months {
		assert.Equal(t, tones[i], month.Tone)
	}
}
