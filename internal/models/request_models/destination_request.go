package request_models

// SearchFilters narrows the destination directory. Every field is optional
// and the filters that are set are combined with AND.
type SearchFilters struct {
	Query      *string  `json:"query,omitempty" form:"query"`
	Location   *string  `json:"location,omitempty" form:"location"`
	Continent  *string  `json:"continent,omitempty" form:"continent"`
	Difficulty *string  `json:"difficulty,omitempty" form:"difficulty" binding:"omitempty,oneof=Easy Moderate Challenging"`
	MinPrice   *float64 `json:"min_price,omitempty" form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice   *float64 `json:"max_price,omitempty" form:"max_price" binding:"omitempty,gte=0"`
	Duration   *int     `json:"duration,omitempty" form:"duration" binding:"omitempty,gte=1"`
	Rating     *float64 `json:"rating,omitempty" form:"rating" binding:"omitempty,gte=1,lte=5"`
	StartDate  *string  `json:"start_date,omitempty" form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    *string  `json:"end_date,omitempty" form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// Merge returns f with every field that is set in other taken from other.
func (f SearchFilters) Merge(other SearchFilters) SearchFilters {
	if other.Query != nil {
		f.Query = other.Query
	}
	if other.Location != nil {
		f.Location = other.Location
	}
	if other.Continent != nil {
		f.Continent = other.Continent
	}
	if other.Difficulty != nil {
		f.Difficulty = other.Difficulty
	}
	if other.MinPrice != nil {
		f.MinPrice = other.MinPrice
	}
	if other.MaxPrice != nil {
		f.MaxPrice = other.MaxPrice
	}
	if other.Duration != nil {
		f.Duration = other.Duration
	}
	if other.Rating != nil {
		f.Rating = other.Rating
	}
	if other.StartDate != nil {
		f.StartDate = other.StartDate
	}
	if other.EndDate != nil {
		f.EndDate = other.EndDate
	}
	return f
}

// IsEmpty reports whether no filter is set.
func (f SearchFilters) IsEmpty() bool {
	return f == SearchFilters{}
}
