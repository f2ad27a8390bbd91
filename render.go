package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinepeek/web-ui/handlers/details/helpers"
	"github.com/cinepeek/web-ui/services/content"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FACC15"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Underline(true)
	blockStyle    = lipgloss.NewStyle().Padding(0, 1)
	overviewWidth = 72
)

type renderer struct {
	f *helpers.FormatHelper
}

func newRenderer(f *helpers.FormatHelper) *renderer {
	return &renderer{f: f}
}

func (s *renderer) line(label string, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func (s *renderer) Render(snap content.Snapshot) string {
	var lines []string
	switch snap.Status() {
	case content.StatusLoading:
		lines = append(lines, mutedStyle.Render(snap.ContentID+": Loading..."))
		return blockStyle.Render(strings.Join(lines, "\n"))
	case content.StatusNotFound:
		lines = append(lines, mutedStyle.Render(snap.ContentID+": No content found"))
		return blockStyle.Render(strings.Join(lines, "\n"))
	}
	if d := snap.Details; d != nil {
		lines = append(lines, titleStyle.Render(d.Title))
		date := "Unknown"
		if d.Date != "" {
			date = s.f.FormatDate(d.Date) + " (" + s.f.RelativeDate(d.Date) + ")"
		}
		lines = append(lines, s.line(d.Kind.DateLabel(), date))
		rating := "N/A"
		if d.HasRating() {
			rating = s.f.FormatRating(d.GetRating())
		}
		lines = append(lines, s.line("Rating", rating))
		if d.Overview != "" {
			lines = append(lines, lipgloss.NewStyle().Width(overviewWidth).Render(d.Overview))
		}
	} else if snap.DetailsPending {
		lines = append(lines, mutedStyle.Render(snap.ContentID+": Loading..."))
	} else {
		lines = append(lines, mutedStyle.Render(snap.ContentID+": Details are unavailable"))
	}
	switch v := snap.SelectedVideo(); {
	case v != nil && v.HasKey():
		lines = append(lines,
			s.line("Featured Video", v.Name),
			s.line("Embed", linkStyle.Render(v.EmbedURL())),
			s.line("Download Trailer (external link)", linkStyle.Render(v.WatchURL())),
		)
	case v != nil:
		lines = append(lines,
			s.line("Featured Video", v.Name),
			mutedStyle.Render("This video cannot be played here."),
		)
	case snap.Status() == content.StatusFetching:
		lines = append(lines, mutedStyle.Render("Loading..."))
	default:
		lines = append(lines, mutedStyle.Render("No video available"))
	}
	return blockStyle.Render(strings.Join(lines, "\n"))
}
