package places

// CuratedBeaches returns the hand-maintained list of well-known Indian
// beaches. It backs the degraded path when the provider is unreachable and
// seeds autocomplete for very short queries. Ratings here are editorial, not
// heuristic, and are labeled accordingly.
func CuratedBeaches() []Place {
	return []Place{
		{
			ID:           "curated-1",
			Name:         "Goa - Baga Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 73.7519, Lat: 15.5557},
			Address:      "Baga Beach, North Goa, Goa, India",
			Rating:       4.5,
			RatingSource: RatingCurated,
			Description:  "Famous beach in North Goa known for water sports, nightlife, and beach shacks. Popular among tourists and party enthusiasts.",
			Highlights:   []string{"Water sports", "Nightlife", "Beach shacks", "Tourism hub"},
			Activities:   []string{"Parasailing", "Jet skiing", "Beach volleyball", "Nightlife"},
			BestTime:     "October to March",
			CrowdLevel:   "Very busy",
			Amenities:    []string{"Beach shacks", "Water sports", "Parking", "ATM"},
			Contact:      Contact{Website: "https://www.goatourism.gov.in"},
		},
		{
			ID:           "curated-2",
			Name:         "Kerala - Kovalam Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 76.9786, Lat: 8.4004},
			Address:      "Kovalam Beach, Thiruvananthapuram, Kerala, India",
			Rating:       4.4,
			RatingSource: RatingCurated,
			Description:  "Crescent-shaped beach with coconut palm groves. Famous for Ayurvedic treatments and lighthouse views.",
			Highlights:   []string{"Lighthouse", "Ayurveda", "Coconut palms", "Surfing"},
			Activities:   []string{"Swimming", "Surfing", "Ayurvedic massage", "Lighthouse visit"},
			BestTime:     "October to March",
			CrowdLevel:   "Moderate",
			Amenities:    []string{"Resorts", "Ayurvedic centers", "Restaurants", "Shops"},
			Contact:      Contact{Website: "https://www.keralatourism.org"},
		},
		{
			ID:           "curated-3",
			Name:         "Mumbai - Juhu Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 72.8265, Lat: 19.0990},
			Address:      "Juhu Beach, Mumbai, Maharashtra, India",
			Rating:       4.0,
			RatingSource: RatingCurated,
			Description:  "Popular urban beach famous for street food, bollywood celebrity homes, and sunset views.",
			Highlights:   []string{"Street food", "Celebrity homes", "Sunset views", "Urban beach"},
			Activities:   []string{"Street food tasting", "Beach walks", "People watching", "Photography"},
			BestTime:     "October to February",
			CrowdLevel:   "Very busy",
			Amenities:    []string{"Food stalls", "Hotels nearby", "Public transport", "Parking"},
		},
		{
			ID:           "curated-4",
			Name:         "Tamil Nadu - Marina Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 80.2785, Lat: 13.0475},
			Address:      "Marina Beach, Chennai, Tamil Nadu, India",
			Rating:       4.2,
			RatingSource: RatingCurated,
			Description:  "Longest urban beach in India. Perfect for morning walks, cultural programs, and local food.",
			Highlights:   []string{"Longest beach", "Cultural events", "Morning walks", "Local food"},
			Activities:   []string{"Beach walks", "Cultural events", "Food tasting", "Photography"},
			BestTime:     "November to February",
			CrowdLevel:   "Busy",
			Amenities:    []string{"Food stalls", "Aquarium nearby", "Public facilities", "Parking"},
			Contact:      Contact{Website: "https://www.tamilnadutourism.org"},
		},
		{
			ID:           "curated-5",
			Name:         "Karnataka - Om Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 74.3236, Lat: 14.3391},
			Address:      "Om Beach, Gokarna, Karnataka, India",
			Rating:       4.6,
			RatingSource: RatingCurated,
			Description:  "Sacred beach shaped like Om symbol. Popular for spirituality, yoga, and pristine natural beauty.",
			Highlights:   []string{"Om shape", "Spiritual significance", "Pristine nature", "Yoga retreats"},
			Activities:   []string{"Yoga", "Meditation", "Trekking", "Beach camping"},
			BestTime:     "October to March",
			CrowdLevel:   "Light to moderate",
			Amenities:    []string{"Beach cafes", "Yoga centers", "Guesthouses", "Temples nearby"},
			Contact:      Contact{Website: "https://www.karnatakatourism.org"},
		},
		{
			ID:           "curated-6",
			Name:         "Odisha - Puri Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 85.8245, Lat: 19.8135},
			Address:      "Puri Beach, Puri, Odisha, India",
			Rating:       4.3,
			RatingSource: RatingCurated,
			Description:  "Holy beach near Jagannath Temple. Famous for religious significance and annual Rath Yatra festival.",
			Highlights:   []string{"Religious significance", "Jagannath Temple", "Rath Yatra", "Sand art"},
			Activities:   []string{"Temple visit", "Religious ceremonies", "Sand art viewing", "Beach walks"},
			BestTime:     "October to March",
			CrowdLevel:   "Busy",
			Amenities:    []string{"Hotels", "Restaurants", "Temple complex", "Shops"},
			Contact:      Contact{Website: "https://www.odishatourism.gov.in"},
		},
		{
			ID:           "curated-7",
			Name:         "Gujarat - Diu Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 70.9131, Lat: 20.7144},
			Address:      "Diu Beach, Diu, Gujarat, India",
			Rating:       4.1,
			RatingSource: RatingCurated,
			Description:  "Peaceful beach with Portuguese colonial architecture. Perfect for relaxation and historical exploration.",
			Highlights:   []string{"Portuguese heritage", "Colonial architecture", "Peaceful atmosphere", "Historical sites"},
			Activities:   []string{"Historical tours", "Beach relaxation", "Photography", "Water sports"},
			BestTime:     "October to March",
			CrowdLevel:   "Light",
			Amenities:    []string{"Heritage hotels", "Restaurants", "Historical sites", "Airport"},
			Contact:      Contact{Website: "https://www.gujarattourism.com"},
		},
		{
			ID:           "curated-8",
			Name:         "West Bengal - Digha Beach",
			Category:     "beach",
			Coordinates:  Coordinate{Lon: 87.5064, Lat: 21.6747},
			Address:      "Digha Beach, Purba Medinipur, West Bengal, India",
			Rating:       3.9,
			RatingSource: RatingCurated,
			Description:  "Popular weekend destination from Kolkata. Known for calm waters and fresh seafood.",
			Highlights:   []string{"Weekend getaway", "Calm waters", "Fresh seafood", "Sunrise views"},
			Activities:   []string{"Swimming", "Seafood dining", "Sunrise watching", "Beach cycling"},
			BestTime:     "October to March",
			CrowdLevel:   "Moderate to busy",
			Amenities:    []string{"Hotels", "Seafood restaurants", "Beach resorts", "Local transport"},
			Contact:      Contact{Website: "https://www.wbtourism.gov.in"},
		},
	}
}
