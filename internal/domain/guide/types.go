package guide

// Destination is a supported coastal destination. The list doubles as the
// warm-up set for the forecast cache.
type Destination struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Hotel is one curated accommodation entry.
type Hotel struct {
	Name      string   `json:"name" yaml:"name"`
	Rating    float64  `json:"rating" yaml:"rating"`
	Price     int      `json:"price" yaml:"price"`
	Distance  string   `json:"distance" yaml:"distance"`
	Amenities []string `json:"amenities" yaml:"amenities"`
}

// Price bands for hotel filtering.
const (
	BandBudget = "budget"
	BandMid    = "mid"
	BandLuxury = "luxury"

	midBandFloor    = 150
	luxuryBandFloor = 250
)

// Restaurant is one curated dining entry.
type Restaurant struct {
	Name        string   `json:"name" yaml:"name"`
	Cuisine     string   `json:"cuisine" yaml:"cuisine"`
	Rating      float64  `json:"rating" yaml:"rating"`
	PriceRange  string   `json:"priceRange" yaml:"priceRange"`
	Specialties []string `json:"specialties" yaml:"specialties"`
	Distance    string   `json:"distance" yaml:"distance"`
	Hours       string   `json:"hours" yaml:"hours"`
	Atmosphere  string   `json:"atmosphere" yaml:"atmosphere"`
	OceanView   bool     `json:"oceanView" yaml:"oceanView"`
}

// TransportOption is one public-transport service.
type TransportOption struct {
	Type      string   `json:"type" yaml:"type"`
	Cost      string   `json:"cost" yaml:"cost"`
	Routes    []string `json:"routes" yaml:"routes"`
	Frequency string   `json:"frequency" yaml:"frequency"`
}

// TransportGuide covers one (destination, mode) combination. Which fields are
// populated depends on the mode: parking for car, options for public,
// ride-hailing costs for ride.
type TransportGuide struct {
	Parking        map[string]string `json:"parking,omitempty" yaml:"parking,omitempty"`
	Options        []TransportOption `json:"options,omitempty" yaml:"options,omitempty"`
	RideOptions    []string          `json:"rideOptions,omitempty" yaml:"rideOptions,omitempty"`
	EstimatedCosts map[string]string `json:"estimatedCosts,omitempty" yaml:"estimatedCosts,omitempty"`
	Tips           []string          `json:"tips" yaml:"tips"`
}

// CategoryScore is one sentiment category with its review volume and trend.
type CategoryScore struct {
	Score   float64 `json:"score" yaml:"score"`
	Reviews int     `json:"reviews" yaml:"reviews"`
	Trend   string  `json:"trend" yaml:"trend"`
}

// Feedback is one recent visitor comment.
type Feedback struct {
	Sentiment string `json:"sentiment" yaml:"sentiment"`
	Text      string `json:"text" yaml:"text"`
	Category  string `json:"category" yaml:"category"`
	Date      string `json:"date" yaml:"date"`
}

// SentimentSummary aggregates visitor sentiment for one destination.
type SentimentSummary struct {
	Overall        float64                  `json:"overall" yaml:"overall"`
	TotalReviews   int                      `json:"totalReviews" yaml:"totalReviews"`
	Categories     map[string]CategoryScore `json:"categories" yaml:"categories"`
	RecentFeedback []Feedback               `json:"recentFeedback" yaml:"recentFeedback"`
	Cleanliness    map[string]float64       `json:"cleanliness" yaml:"cleanliness"`
}

// SafetyRecord is one destination's incident summary for a year.
type SafetyRecord struct {
	Location        string   `json:"location" yaml:"location"`
	Incidents       int      `json:"incidents" yaml:"incidents"`
	Warnings        []string `json:"warnings" yaml:"warnings"`
	Rating          string   `json:"rating" yaml:"rating"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// ScheduledActivity is one timed entry of a single-day itinerary.
type ScheduledActivity struct {
	Time        string `json:"time" yaml:"time"`
	Activity    string `json:"activity" yaml:"activity"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

// DayOutline is one day of a multi-day itinerary.
type DayOutline struct {
	Day        int      `json:"day" yaml:"day"`
	Theme      string   `json:"theme" yaml:"theme"`
	Activities []string `json:"activities" yaml:"activities"`
}

// Itinerary is a curated plan for a (destination, duration) pair. Single-day
// plans carry Activities, multi-day plans carry Days.
type Itinerary struct {
	Title      string              `json:"title" yaml:"title"`
	Activities []ScheduledActivity `json:"activities,omitempty" yaml:"activities,omitempty"`
	Days       []DayOutline        `json:"days,omitempty" yaml:"days,omitempty"`
	Tips       []string            `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// PlanResult wraps an itinerary lookup. A miss is not an error: the catalog
// answers with a placeholder title and message instead.
type PlanResult struct {
	Found     bool       `json:"found"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
	Title     string     `json:"title,omitempty"`
	Message   string     `json:"message,omitempty"`
}
