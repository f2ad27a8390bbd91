package helpers

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const catalogDateLayout = "2006-01-02"

type FormatHelper struct {
	p   *message.Printer
	now func() time.Time
}

func NewFormatHelper(tag language.Tag) *FormatHelper {
	return &FormatHelper{
		p:   message.NewPrinter(tag),
		now: time.Now,
	}
}

// FormatRating renders a rating with one decimal in the helper's locale.
func (s *FormatHelper) FormatRating(r float64) string {
	return s.p.Sprintf("%v", number.Decimal(r, number.MaxFractionDigits(1), number.MinFractionDigits(1)))
}

// FormatDate renders a catalog date as "January 2, 2006". Unparseable dates are returned as is.
func (s *FormatHelper) FormatDate(d string) string {
	t, err := time.Parse(catalogDateLayout, d)
	if err != nil {
		return d
	}
	return t.Format("January 2, 2006")
}

// RelativeDate renders a catalog date as "16 years ago" or "2 weeks from now".
func (s *FormatHelper) RelativeDate(d string) string {
	t, err := time.Parse(catalogDateLayout, d)
	if err != nil {
		return ""
	}
	return humanize.RelTime(t, s.now(), "ago", "from now")
}
