package adventure

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator produces randomized adventure suggestions.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator seeded from the clock.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSeed returns a deterministic Generator, used by tests.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// Generate builds one suggestion for the given location, mood and duration.
// The mood and duration inputs are echoed on the result unchanged, and every
// call assigns a fresh id.
func (g *Generator) Generate(location string, mood Mood, durationMinutes int) Adventure {
	pool := poolFor(mood)
	t := pool[g.intn(len(pool))]
	title, description := t.expand(location)

	return Adventure{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		Cost:          t.Cost,
		Tips:          t.Tips,
		Location:      location,
		Mood:          string(mood),
		Duration:      durationMinutes,
		EstimatedTime: formatEstimatedTime(durationMinutes),
	}
}

// Discover generates count suggestions. Each iteration resolves an effective
// mood (random when the filter is "all") and duration (random from the fixed
// rotation when "all", otherwise the filter parsed as minutes). A count of
// zero or less yields an empty slice; large counts are not bounded.
func (g *Generator) Discover(location, moodFilter, durationFilter string, count int) ([]Adventure, error) {
	adventures := make([]Adventure, 0, max(count, 0))
	for i := 0; i < count; i++ {
		mood := Mood(moodFilter)
		if moodFilter == FilterAll {
			mood = allMoods[g.intn(len(allMoods))]
		}

		var duration int
		if durationFilter == FilterAll {
			duration = allDurations[g.intn(len(allDurations))]
		} else {
			d, err := strconv.Atoi(durationFilter)
			if err != nil {
				return nil, fmt.Errorf("parse duration filter %q: %w", durationFilter, err)
			}
			duration = d
		}

		adventures = append(adventures, g.Generate(location, mood, duration))
	}
	return adventures, nil
}

// formatEstimatedTime renders durations under an hour as "N minutes" and
// everything else as whole hours, singular only for exactly one hour.
func formatEstimatedTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
