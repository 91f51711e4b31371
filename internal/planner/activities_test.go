package planner

import (
	"testing"

	"tripplanner/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func fourPoiCity() stubCatalog {
	return stubCatalog{
		pois: map[string][]models.Poi{
			"prague": {
				{ID: 1, Name: "Castle", Category: "history", PopularityScore: 9},
				{ID: 2, Name: "Bridge", Category: "architecture", PopularityScore: 8},
				{ID: 3, Name: "Gallery", Category: "art", PopularityScore: 6},
				{ID: 4, Name: "Beer Hall", Category: "nightlife", PopularityScore: 7},
			},
		},
	}
}

func TestSelectActivitiesInterestPhaseWinsFirst(t *testing.T) {
	e := seededEngine(fourPoiCity(), 1)
	e.reset(validRequest())

	acts := e.selectActivities("prague", []string{"history", "architecture"})

	require.Len(t, acts, 3)
	ids := map[int]bool{}
	for _, a := range acts {
		ids[a.ID] = true
	}
	require.True(t, ids[1], "interest-matching Castle must be scheduled")
	require.True(t, ids[2], "interest-matching Bridge must be scheduled")
}

func TestSelectActivitiesSparseCityReturnsFewer(t *testing.T) {
	cat := stubCatalog{
		pois: map[string][]models.Poi{
			"tiny": {
				{ID: 1, Category: "museums", PopularityScore: 5},
				{ID: 2, Category: "food", PopularityScore: 4},
			},
		},
	}
	e := seededEngine(cat, 2)
	e.reset(validRequest())

	acts := e.selectActivities("tiny", []string{"museums"})
	require.Len(t, acts, 2)

	require.Empty(t, e.selectActivities("nowhere", []string{"museums"}))
}

func TestSelectActivitiesRotatesAcrossRepeatedDays(t *testing.T) {
	e := seededEngine(fourPoiCity(), 3)
	e.reset(validRequest())

	day1 := e.selectActivities("prague", []string{"museums"})
	day2 := e.selectActivities("prague", []string{"museums"})

	require.Len(t, day1, 3)
	require.Len(t, day2, 3)

	union := map[int]bool{}
	for _, a := range day1 {
		union[a.ID] = true
	}
	for _, a := range day2 {
		union[a.ID] = true
	}
	require.Len(t, union, 4, "two days in a four-POI city must cover every POI")
}

func TestSelectActivitiesNoDuplicateWithinCall(t *testing.T) {
	e := seededEngine(fourPoiCity(), 4)
	e.reset(validRequest())

	for day := 0; day < 6; day++ {
		acts := e.selectActivities("prague", []string{"history"})
		ids := map[int]bool{}
		for _, a := range acts {
			require.False(t, ids[a.ID], "duplicate POI %d within one day", a.ID)
			ids[a.ID] = true
		}
	}
}

func TestSelectActivitiesDecoratesTimeAndCost(t *testing.T) {
	e := seededEngine(fourPoiCity(), 5)
	e.reset(validRequest())

	acts := e.selectActivities("prague", []string{"history"})
	require.Len(t, acts, 3)

	slots := map[string]bool{}
	for _, a := range acts {
		require.GreaterOrEqual(t, a.Cost, 0.0)
		require.NotEmpty(t, a.Time)
		slots[a.Time] = true
	}
	require.Len(t, slots, 3, "three activities occupy three distinct slots")
}

func TestSlotForWrapsPastThree(t *testing.T) {
	require.Equal(t, slotFor(0), slotFor(3))
	require.Equal(t, slotFor(1), slotFor(4))
	require.NotEqual(t, slotFor(0), slotFor(1))
	require.NotEqual(t, slotFor(1), slotFor(2))
	require.Equal(t, slotFor(0), slotFor(-2))
}
