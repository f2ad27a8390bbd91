package models

// ContentDetails is the descriptive record of a resolved catalog item.
// Absent upstream fields are already substituted with their empty values.
type ContentDetails struct {
	ContentID  string      `json:"content_id"`
	Kind       ContentKind `json:"kind"`
	Title      string      `json:"title"`
	Overview   string      `json:"overview"`
	PosterPath string      `json:"poster_path,omitempty"`
	Date       string      `json:"date,omitempty"`
	Rating     *float64    `json:"rating,omitempty"`
}

func (s *ContentDetails) HasPoster() bool {
	return s.PosterPath != ""
}

func (s *ContentDetails) HasRating() bool {
	return s.Rating != nil
}

func (s *ContentDetails) GetRating() float64 {
	if s.Rating == nil {
		return 0
	}
	return *s.Rating
}
