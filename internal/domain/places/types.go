package places

// Coordinate is a WGS84 point in GeoJSON order on the wire (lon, lat).
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Contact carries the provider's published contact fields, when present.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// Place is the view-model served to clients. Rating, description,
// highlights, activities and crowd level are synthesized from category tags
// and contact-field presence; RatingSource labels that explicitly so they are
// never mistaken for review data.
type Place struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Coordinates  Coordinate `json:"coordinates"`
	Address      string     `json:"address"`
	Rating       float64    `json:"rating"`
	RatingSource string     `json:"ratingSource"`
	Description  string     `json:"description"`
	Highlights   []string   `json:"highlights"`
	Activities   []string   `json:"activities"`
	BestTime     string     `json:"bestTime,omitempty"`
	CrowdLevel   string     `json:"crowdLevel,omitempty"`
	Amenities    []string   `json:"amenities,omitempty"`
	Contact      Contact    `json:"contact"`
}

// Rating provenance labels.
const (
	RatingHeuristic = "heuristic"
	RatingCurated   = "curated"
)

// Feature is one provider record, already flattened from the GeoJSON shape.
type Feature struct {
	PlaceID      string
	Name         string
	Categories   []string
	Lon          float64
	Lat          float64
	Street       string
	Housenumber  string
	Suburb       string
	City         string
	State        string
	Postcode     string
	Country      string
	Formatted    string
	Phone        string
	Website      string
	OpeningHours string
}

// SearchQuery selects a filter strategy: place id beats coordinates beats a
// named region beats the default country-wide filter.
type SearchQuery struct {
	Category     string
	Region       string
	PlaceID      string
	Coordinates  *Coordinate
	RadiusMeters int
	Limit        int
}

// RegionOption is a selectable named coastal region.
type RegionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Config wires runtime settings for the places domain.
type Config struct {
	DefaultLimit  int
	DefaultRadius int
}
