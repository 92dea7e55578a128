package model

// Movie is a single catalog entry. The catalog is loaded once at startup
// and never mutated, so Movie values are treated as immutable.
type Movie struct {
	ID          int64   `json:"id" validate:"gt=0"`
	MovieName   string  `json:"movieName" validate:"required"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre" validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" validate:"gte=0"`
	IMDbRating  float64 `json:"imdbRating" validate:"gte=1,lte=5"`
}

// Review is a viewer review attached to a movie by id.
type Review struct {
	MovieID  int64  `json:"movieId"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// RecentSearch is one remembered search term together with the query
// parameter it was used as, so replaying it repeats the same kind of search.
type RecentSearch struct {
	Param string // "name" or "genre"
	Term  string
}

// SearchCriteria carries the optional parameters of one search call.
// Zero values mean "absent": a blank Name/Genre and a non-positive ID
// apply no filter.
type SearchCriteria struct {
	Name  string
	ID    int64
	Genre string
}
