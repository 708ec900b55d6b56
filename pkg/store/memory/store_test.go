package memory

import (
	"testing"
	"time"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	s := NewStore(time.Hour)
	report := domain.AstrologyReport{Duration: "1 year", Years: []int{2026}}

	_, ok := s.Get("k1")
	assert.False(t, ok)

	s.Set("k1", report)
	got, ok := s.Get("k1")
	require.True(t, ok)
	assert.Equal(t, report, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Replace(t *testing.T) {
	s := NewStore(time.Hour)
	s.Set("k1", domain.AstrologyReport{Duration: "1 year"})
	s.Set("k1", domain.AstrologyReport{Duration: "3 years"})

	got, ok := s.Get("k1")
	require.True(t, ok)
	assert.Equal(t, "3 years", got.Duration)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(time.Minute)
	current := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Set("k1", domain.AstrologyReport{Duration: "1 year"})
	_, ok := s.Get("k1")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = s.Get("k1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len(), "expired entry is removed")
}

func TestStore_ExpiryKeepsConcurrentRefresh(t *testing.T) {
	s := NewStore(time.Minute)
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	current := base
	s.now = func() time.Time { return current }

	s.Set("k1", domain.AstrologyReport{Duration: "1 year"})

	// interleave a refresh between Get's stale read and its delete by
	// hooking the clock used for the expiry check
	current = base.Add(2 * time.Minute)
	refreshed := false
	s.now = func() time.Time {
		if !refreshed {
			refreshed = true
			s.Set("k1", domain.AstrologyReport{Duration: "3 years"})
		}
		return current
	}

	_, ok := s.Get("k1")
	assert.False(t, ok, "the stale read itself misses")

	got, ok := s.Get("k1")
	require.True(t, ok, "the refreshed entry survives the expiry delete")
	assert.Equal(t, "3 years", got.Duration)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	s := NewStore(0)
	current := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Set("k1", domain.AstrologyReport{Duration: "1 year"})
	current = current.Add(1000 * time.Hour)
	_, ok := s.Get("k1")
	assert.True(t, ok)
}
