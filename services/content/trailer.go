package content

import "github.com/cinepeek/web-ui/models"

// SelectTrailer picks the first trailer in catalog order, falling back to the first video.
// It returns nil for an empty list.
func SelectTrailer(videos []models.PromotionalVideo) *models.PromotionalVideo {
	for i := range videos {
		if videos[i].IsTrailer() {
			return &videos[i]
		}
	}
	if len(videos) > 0 {
		return &videos[0]
	}
	return nil
}
