package report

import (
	"testing"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestCacheKey_Stable(t *testing.T) {
	assert.Equal(t, CacheKey(testProfile(), 3), CacheKey(testProfile(), 3))
}

func TestCacheKey_IgnoresNameChanges(t *testing.T) {
	// the full name does not affect the report rules, so it does not
	// affect the key either
	renamed := testProfile()
	renamed.FullName = "Someone Else"
	assert.Equal(t, CacheKey(testProfile(), 3), CacheKey(renamed, 3))
}

func TestCacheKey_SensitiveToEveryField(t *testing.T) {
	base := CacheKey(testProfile(), 3)

	mutations := map[string]func(*domain.Profile){
		"date of birth": func(p *domain.Profile) { p.DateOfBirth = "1990-05-15" },
		"sun sign":      func(p *domain.Profile) { p.SunSign = "gemini" },
		"moon sign":     func(p *domain.Profile) { p.MoonSign = "leo" },
		"ascendant":     func(p *domain.Profile) { p.Ascendant = "libra" },
		"dasha":         func(p *domain.Profile) { p.Dasha = "Venus Mahadasha" },
		"anchor year":   func(p *domain.Profile) { p.AnchorYear = 2027 },
		"one house":     func(p *domain.Profile) { p.Houses[domain.BodySaturn] = 11 },
		"one sign":      func(p *domain.Profile) { p.Signs[domain.BodyMars] = "leo" },
	}

	for name, mutate := range mutations {
		p := testProfile()
		mutate(&p)
		assert.NotEqual(t, base, CacheKey(p, 3), "mutation: %s", name)
	}

	assert.NotEqual(t, base, CacheKey(testProfile(), 5), "mutation: duration")
}

func TestCacheKey_Format(t *testing.T) {
	key := CacheKey(testProfile(), 1)
	assert.NotEmpty(t, key)
	assert.LessOrEqual(t, len(key), 7) // 32-bit value in base 36
	for _, c := range key {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z'), "char %q", c)
	}
}

func TestCacheKey_MissingPlacementsStillKeyed(t *testing.T) {
	empty := domain.Profile{}
	assert.NotEmpty(t, CacheKey(empty, 1))
	assert.Equal(t, CacheKey(empty, 1), CacheKey(domain.Profile{}, 1))
}
