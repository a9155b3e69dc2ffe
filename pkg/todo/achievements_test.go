package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suite/pkg/storage"
)

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name string
		in   Progress
		want []Badge
	}{
		{"nothing", Progress{Completed: 9, Streak: 6, Categories: 4}, nil},
		{"getting started", Progress{Completed: 10}, []Badge{BadgeGettingStarted}},
		{"pro planner", Progress{Completed: 100}, []Badge{BadgeGettingStarted, BadgeProPlanner}},
		{"week streak", Progress{Streak: 7}, []Badge{BadgeConsistencyKing}},
		{"month streak", Progress{Streak: 30}, []Badge{BadgeConsistencyKing, BadgeMonthlyMaster}},
		{"categories", Progress{Categories: 5}, []Badge{BadgeCategoryPro}},
		{"everything", Progress{Completed: 100, Streak: 30, Categories: 5}, AllBadges()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.in))
		})
	}
}

func TestBadgeSetIsMonotonic(t *testing.T) {
	set := BadgeSet{}
	set = set.Accumulate(Progress{Streak: 7})
	set = set.Accumulate(Progress{Completed: 10, Streak: 1})
	set = set.Accumulate(Progress{})

	assert.Equal(t, BadgeSet{BadgeConsistencyKing, BadgeGettingStarted}, set)
}

func TestAccumulateIsIdempotent(t *testing.T) {
	p := Progress{Completed: 12, Streak: 8, Categories: 5}
	once := BadgeSet{}.Accumulate(p)
	twice := once.Accumulate(p)
	assert.Equal(t, once, twice)
}

func TestUnionDoesNotModifyReceiver(t *testing.T) {
	base := make(BadgeSet, 1, 4)
	base[0] = BadgeCategoryPro
	grown := base.Union([]Badge{BadgeProPlanner})

	assert.Equal(t, BadgeSet{BadgeCategoryPro}, base)
	assert.Equal(t, BadgeSet{BadgeCategoryPro, BadgeProPlanner}, grown)
}

func TestLoadBadgesNormalisesIcons(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set("badges", `["🎯 Getting Started","Category Pro","🎯 Getting Started"]`))

	assert.Equal(t, BadgeSet{BadgeGettingStarted, BadgeCategoryPro}, LoadBadges(store))

	require.NoError(t, store.Set("badges", `not json`))
	assert.Empty(t, LoadBadges(store))
}

func TestBadgeDisplay(t *testing.T) {
	assert.Equal(t, "💯 Pro Planner", BadgeProPlanner.Display())
	assert.Equal(t, "Mystery", Badge("Mystery").Display())
}
