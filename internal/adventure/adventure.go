package adventure

// Mood selects which template pool a suggestion is drawn from.
type Mood string

const (
	MoodChill       Mood = "chill"
	MoodActive      Mood = "active"
	MoodCreative    Mood = "creative"
	MoodSocial      Mood = "social"
	MoodAdventurous Mood = "adventurous"
	MoodFoodie      Mood = "foodie"
)

// allMoods is the rotation used when discovery has no mood filter.
var allMoods = []Mood{
	MoodChill,
	MoodActive,
	MoodCreative,
	MoodSocial,
	MoodAdventurous,
	MoodFoodie,
}

// allDurations (minutes) is the rotation used when discovery has no
// duration filter.
var allDurations = []int{30, 60, 120, 240}

// FilterAll disables mood/duration filtering in Discover.
const FilterAll = "all"

// DefaultCount is the number of suggestions a discovery returns when the
// caller does not ask for a specific count.
const DefaultCount = 6

// Adventure is a generated suggestion. It is never persisted in full;
// only its id survives when a user saves it.
type Adventure struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Cost          string   `json:"cost"` // free-text range, e.g. "$5-15"
	Tips          []string `json:"tips"`
	Location      string   `json:"location"`
	Mood          string   `json:"mood"`
	Duration      int      `json:"duration"` // minutes
	EstimatedTime string   `json:"estimatedTime"`
}
