package planner

import (
	"sort"
	"strconv"

	"tripplanner/internal/domain/models"
)

// selectActivities picks up to three POIs for one day in a city, marks them
// visited and decorates them with a time slot and an estimated cost.
//
// Four phases, each filling only the remaining slots:
//  1. interest-matching unvisited POIs, most popular first
//  2. any unvisited POIs, most popular first
//  3. rotation over the full list (revisits allowed), starting at a
//     per-city cursor so repeated stays in a city sample different windows
//  4. a final shuffle so slot order is not biased toward phase order
func (e *Engine) selectActivities(city string, interests []string) []models.Activity {
	pois := e.Catalog.Pois(city)
	if len(pois) == 0 {
		return []models.Activity{}
	}

	selected := make([]models.Poi, 0, maxActivitiesPerDay)
	chosen := map[int]bool{}

	take := func(pool []models.Poi) {
		sortByPopularity(pool)
		for _, p := range pool {
			if len(selected) == maxActivitiesPerDay {
				return
			}
			if chosen[p.ID] {
				continue
			}
			selected = append(selected, p)
			chosen[p.ID] = true
		}
	}

	interestPool := []models.Poi{}
	for _, p := range pois {
		if !e.poiVisited(city, p.ID) && matchesInterest(p.Category, interests) {
			interestPool = append(interestPool, p)
		}
	}
	take(interestPool)

	if len(selected) < maxActivitiesPerDay {
		fallbackPool := []models.Poi{}
		for _, p := range pois {
			if !chosen[p.ID] && !e.poiVisited(city, p.ID) {
				fallbackPool = append(fallbackPool, p)
			}
		}
		take(fallbackPool)
	}

	if len(selected) < maxActivitiesPerDay {
		start := e.rotation[city] % len(pois)
		filled := 0
		for i := 0; i < len(pois) && len(selected) < maxActivitiesPerDay; i++ {
			p := pois[(start+i)%len(pois)]
			if chosen[p.ID] {
				continue
			}
			selected = append(selected, p)
			chosen[p.ID] = true
			filled++
		}
		e.rotation[city] = (start + filled) % len(pois)
	}

	e.Rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if len(selected) > maxActivitiesPerDay {
		selected = selected[:maxActivitiesPerDay]
	}

	activities := make([]models.Activity, 0, len(selected))
	for i, p := range selected {
		e.markPoiVisited(city, p.ID)
		activities = append(activities, models.Activity{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Time:     slotFor(i),
			Duration: p.Duration,
			Cost:     e.estimateActivityCost(p.Category),
		})
	}
	return activities
}

func sortByPopularity(pois []models.Poi) {
	sort.SliceStable(pois, func(i, j int) bool {
		return popularityOrDefault(pois[i].PopularityScore) > popularityOrDefault(pois[j].PopularityScore)
	})
}

// POI ids are only unique within one city, so the visited set is keyed by
// the (city, id) pair.
func poiKey(city string, id int) string {
	return city + "#" + strconv.Itoa(id)
}

func (e *Engine) poiVisited(city string, id int) bool {
	return e.visitedPois[poiKey(city, id)]
}

func (e *Engine) markPoiVisited(city string, id int) {
	e.visitedPois[poiKey(city, id)] = true
}
