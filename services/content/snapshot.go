package content

import (
	"encoding/json"

	"github.com/cinepeek/web-ui/models"
)

type Status int

const (
	StatusLoading Status = iota
	StatusNotFound
	StatusFetching
	StatusNoVideo
	StatusReady
)

var statusNames = map[Status]string{
	StatusLoading:  "loading",
	StatusNotFound: "not_found",
	StatusFetching: "fetching",
	StatusNoVideo:  "no_video",
	StatusReady:    "ready",
}

func (s Status) String() string {
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a copy of a view's state at one point in time.
type Snapshot struct {
	ContentID      string
	Generation     uint64
	Loading        bool
	Resolution     Resolution
	Details        *models.ContentDetails
	Videos         []models.PromotionalVideo
	DetailsPending bool
	VideosPending  bool
}

func (s Snapshot) Status() Status {
	if s.Loading {
		return StatusLoading
	}
	if !s.Resolution.IsFound() {
		return StatusNotFound
	}
	if s.VideosPending {
		return StatusFetching
	}
	if s.SelectedVideo() == nil {
		return StatusNoVideo
	}
	return StatusReady
}

func (s Snapshot) Kind() models.ContentKind {
	k, _ := s.Resolution.Kind()
	return k
}

func (s Snapshot) SelectedVideo() *models.PromotionalVideo {
	return SelectTrailer(s.Videos)
}

func (s Snapshot) clone() Snapshot {
	c := s
	if s.Videos != nil {
		c.Videos = make([]models.PromotionalVideo, len(s.Videos))
		copy(c.Videos, s.Videos)
	}
	if s.Details != nil {
		d := *s.Details
		c.Details = &d
	}
	return c
}

type snapshotJSON struct {
	ContentID string                    `json:"content_id"`
	Status    Status                    `json:"status"`
	Loading   bool                      `json:"loading"`
	Kind      models.ContentKind        `json:"kind,omitempty"`
	Details   *models.ContentDetails    `json:"details"`
	Videos    []models.PromotionalVideo `json:"videos"`
	Selected  *models.PromotionalVideo  `json:"selected_video"`
	EmbedURL  string                    `json:"embed_url,omitempty"`
	WatchURL  string                    `json:"watch_url,omitempty"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	j := snapshotJSON{
		ContentID: s.ContentID,
		Status:    s.Status(),
		Loading:   s.Loading,
		Kind:      s.Kind(),
		Details:   s.Details,
		Videos:    s.Videos,
		Selected:  s.SelectedVideo(),
	}
	if j.Videos == nil {
		j.Videos = []models.PromotionalVideo{}
	}
	if j.Selected != nil && j.Selected.HasKey() {
		j.EmbedURL = j.Selected.EmbedURL()
		j.WatchURL = j.Selected.WatchURL()
	}
	return json.Marshal(j)
}
