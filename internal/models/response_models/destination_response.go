package response_models

type ItineraryDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Destination struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Location     string         `json:"location"`
	Country      string         `json:"country"`
	Continent    string         `json:"continent"`
	Images       []string       `json:"images"`
	Price        float64        `json:"price"`
	Currency     string         `json:"currency"`
	Rating       float64        `json:"rating"`
	Duration     int            `json:"duration"`
	Highlights   []string       `json:"highlights"`
	Difficulty   string         `json:"difficulty"`
	MaxGroupSize int            `json:"max_group_size"`
	IsActive     bool           `json:"is_active"`
	Itinerary    []ItineraryDay `json:"itinerary"`
	Included     []string       `json:"included"`
	Excluded     []string       `json:"excluded"`
	Languages    []string       `json:"languages"`
}

// DestinationList is the directory page. Fallback is set when the store was
// empty or unreachable and the built-in list was served instead.
type DestinationList struct {
	Destinations []Destination `json:"destinations"`
	Total        int           `json:"total"`
	Fallback     bool          `json:"fallback"`
}

// Facets lists the values the directory can be filtered on.
type Facets struct {
	Continents   []string `json:"continents"`
	Difficulties []string `json:"difficulties"`
}
