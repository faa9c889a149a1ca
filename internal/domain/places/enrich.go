package places

import (
	"math"
	"strings"
)

// enrich turns a provider feature into a Place view-model. Everything beyond
// name, address and coordinates is heuristic synthesis from category tags and
// contact-field presence, labeled as such via RatingSource.
func enrich(f Feature) Place {
	name := f.Name
	if name == "" {
		name = "Unnamed Place"
	}
	return Place{
		ID:           f.PlaceID,
		Name:         name,
		Category:     categorize(f.Categories),
		Coordinates:  Coordinate{Lon: f.Lon, Lat: f.Lat},
		Address:      formatAddress(f),
		Rating:       heuristicRating(f),
		RatingSource: RatingHeuristic,
		Description:  describe(f.Categories, name),
		Highlights:   extractHighlights(f),
		Activities:   suggestActivities(f.Categories),
		CrowdLevel:   estimateCrowdLevel(f),
		Amenities:    extractAmenities(f.Categories),
		Contact: Contact{
			Phone:   f.Phone,
			Website: f.Website,
		},
	}
}

func formatAddress(f Feature) string {
	parts := make([]string, 0, 7)
	for _, part := range []string{f.Street, f.Housenumber, f.Suburb, f.City, f.State, f.Postcode, f.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		if f.Formatted != "" {
			return f.Formatted
		}
		return "Address not available"
	}
	return strings.Join(parts, ", ")
}

// heuristicRating scores 1-5 from weak quality signals: a resort name and the
// presence of website/phone/opening-hours data.
func heuristicRating(f Feature) float64 {
	rating := 3.5
	if strings.Contains(strings.ToLower(f.Name), "resort") {
		rating += 0.5
	}
	if f.Website != "" {
		rating += 0.2
	}
	if f.Phone != "" {
		rating += 0.1
	}
	if f.OpeningHours != "" {
		rating += 0.2
	}
	rating = math.Min(5, math.Max(1, rating))
	return math.Round(rating*10) / 10
}

func categorize(categories []string) string {
	if len(categories) == 0 {
		return "attraction"
	}
	main := categories[0]
	switch {
	case strings.Contains(main, "beach"):
		return "beach"
	case strings.Contains(main, "restaurant"), strings.Contains(main, "cafe"):
		return "restaurant"
	case strings.Contains(main, "hotel"), strings.Contains(main, "accommodation"):
		return "hotel"
	case strings.Contains(main, "shopping"):
		return "shopping"
	default:
		return "attraction"
	}
}

func describe(categories []string, name string) string {
	main := ""
	if len(categories) > 0 {
		main = categories[0]
	}
	switch {
	case strings.Contains(main, "beach"):
		return "Beautiful coastal destination perfect for relaxation and water activities. " + name + " offers scenic views and a peaceful atmosphere."
	case strings.Contains(main, "restaurant"), strings.Contains(main, "cafe"):
		return "Delightful dining experience with local and international cuisine. " + name + " provides quality food and service."
	case strings.Contains(main, "hotel"), strings.Contains(main, "accommodation"):
		return "Comfortable accommodation with modern amenities. " + name + " ensures a pleasant stay for travelers."
	default:
		return "Popular destination offering unique experiences. " + name + " is worth visiting for its distinctive features."
	}
}

func extractHighlights(f Feature) []string {
	highlights := make([]string, 0, 4)
	add := newOrderedSet(&highlights)
	for _, cat := range f.Categories {
		if strings.Contains(cat, "beach") {
			add("Beach access")
			add("Ocean views")
		}
		if strings.Contains(cat, "resort") {
			add("Resort amenities")
			add("Luxury facilities")
		}
		if strings.Contains(cat, "restaurant") {
			add("Dining")
			add("Local cuisine")
		}
		if strings.Contains(cat, "hotel") {
			add("Accommodation")
			add("Comfortable stay")
		}
	}
	if f.Website != "" {
		add("Online booking")
	}
	if f.Phone != "" {
		add("Phone booking")
	}
	if len(highlights) == 0 {
		return []string{"Scenic location", "Great atmosphere"}
	}
	return highlights
}

func suggestActivities(categories []string) []string {
	activities := make([]string, 0, 4)
	add := newOrderedSet(&activities)
	for _, cat := range categories {
		if strings.Contains(cat, "beach") {
			add("Swimming")
			add("Sunbathing")
			add("Beach volleyball")
			add("Water sports")
		}
		if strings.Contains(cat, "restaurant") {
			add("Dining")
			add("Food tasting")
		}
		if strings.Contains(cat, "tourism") {
			add("Sightseeing")
			add("Photography")
		}
	}
	if len(activities) == 0 {
		return []string{"Exploration", "Photography", "Relaxation"}
	}
	return activities
}

func extractAmenities(categories []string) []string {
	amenities := make([]string, 0, 2)
	add := newOrderedSet(&amenities)
	for _, cat := range categories {
		if strings.Contains(cat, "restaurant") {
			add("Restaurant")
		}
		if strings.Contains(cat, "parking") {
			add("Parking")
		}
		if strings.Contains(cat, "wifi") {
			add("WiFi")
		}
		if strings.Contains(cat, "resort") {
			add("Resort facilities")
		}
	}
	return amenities
}

func estimateCrowdLevel(f Feature) string {
	if strings.Contains(strings.ToLower(f.Name), "resort") {
		return "Busy"
	}
	if f.Website != "" && f.Phone != "" {
		return "Moderate"
	}
	return "Light"
}

// newOrderedSet appends unique values to target preserving insertion order.
func newOrderedSet(target *[]string) func(string) {
	seen := make(map[string]struct{})
	return func(value string) {
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		*target = append(*target, value)
	}
}
