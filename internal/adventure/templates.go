package adventure

import "strings"

// template is one suggestion blueprint. "{location}" in the text fields is
// replaced with the requested location.
type template struct {
	Title       string
	Description string
	Cost        string
	Tips        []string
}

func (t template) expand(location string) (title, description string) {
	title = strings.ReplaceAll(t.Title, "{location}", location)
	description = strings.ReplaceAll(t.Description, "{location}", location)
	return title, description
}

var templates = map[Mood][]template{
	MoodChill: {
		{
			Title:       "Peaceful Park Visit in {location}",
			Description: "Find a quiet spot in a local park in {location} and enjoy some downtime. Bring a book, listen to music, or just watch the world go by.",
			Cost:        "$0-10",
			Tips:        []string{"Bring a blanket or chair", "Pack some snacks", "Choose a comfortable spot"},
		},
		{
			Title:       "Local Café Discovery in {location}",
			Description: "Explore a new café in {location} and try something different from their menu. Perfect for reading or catching up with a friend.",
			Cost:        "$8-15",
			Tips:        []string{"Try something new", "Bring a book", "Ask staff for recommendations"},
		},
	},
	MoodActive: {
		{
			Title:       "Bike Ride Through {location}",
			Description: "Rent a bike and explore {location} at your own pace. Discover new neighborhoods and get some exercise.",
			Cost:        "$15-25",
			Tips:        []string{"Check bike rental locations", "Wear a helmet", "Plan a safe route"},
		},
		{
			Title:       "Walking Tour of {location}",
			Description: "Create your own walking tour of {location}, visiting interesting landmarks and neighborhoods.",
			Cost:        "Free",
			Tips:        []string{"Wear comfortable shoes", "Stay hydrated", "Use maps app for navigation"},
		},
	},
	MoodCreative: {
		{
			Title:       "Local Art Discovery in {location}",
			Description: "Explore public art, galleries, or creative spaces in {location}. Take photos and learn about local artists.",
			Cost:        "$5-15",
			Tips:        []string{"Bring a camera", "Research art districts", "Visit during daylight"},
		},
	},
	MoodSocial: {
		{
			Title:       "Food Market Visit in {location}",
			Description: "Explore a local food market in {location} with friends. Try different vendors and share the experience.",
			Cost:        "$15-30",
			Tips:        []string{"Bring cash", "Come with friends", "Try multiple vendors"},
		},
	},
	MoodAdventurous: {
		{
			Title:       "Hidden Spots Exploration in {location}",
			Description: "Use local guides or apps to find lesser-known interesting spots in {location}. Discover something new!",
			Cost:        "$10-20",
			Tips:        []string{"Research beforehand", "Stay in safe areas", "Use public transport"},
		},
	},
	MoodFoodie: {
		{
			Title:       "Cuisine Discovery in {location}",
			Description: "Pick a cuisine you've never tried and find a highly-rated restaurant in {location}. Expand your palate!",
			Cost:        "$20-40",
			Tips:        []string{"Read reviews first", "Ask for recommendations", "Try signature dishes"},
		},
	},
}

// poolFor returns the template pool for a mood. Unknown moods deliberately
// fall back to the chill pool instead of failing; callers still echo the
// original mood string on the result.
func poolFor(mood Mood) []template {
	if pool, ok := templates[mood]; ok {
		return pool
	}
	return templates[MoodChill]
}
