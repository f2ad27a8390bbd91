package models

import (
	"fmt"
	"net/url"
)

const (
	TrailerType = "Trailer"

	embedURLTemplate = "https://www.youtube.com/embed/%s"
	watchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PromotionalVideo is a trailer or clip attached to a catalog item.
type PromotionalVideo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
	Site string `json:"site,omitempty"`
}

func (s *PromotionalVideo) IsTrailer() bool {
	return s.Type == TrailerType
}

// HasKey reports whether the video can be embedded or linked.
func (s *PromotionalVideo) HasKey() bool {
	return s.Key != ""
}

// EmbedURL is the player URL for the video.
func (s *PromotionalVideo) EmbedURL() string {
	return fmt.Sprintf(embedURLTemplate, url.PathEscape(s.Key))
}

// WatchURL is the external watch page. It is what the "download" link points to.
func (s *PromotionalVideo) WatchURL() string {
	return fmt.Sprintf(watchURLTemplate, url.QueryEscape(s.Key))
}
