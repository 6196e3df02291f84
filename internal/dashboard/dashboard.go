// Package dashboard prepares the summary page: stat cards, the
// patients/appointments chart, recent activity and upcoming visits.
package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

type Chart struct {
	Timeframe domain.Timeframe    `json:"timeframe"`
	Points    []models.ChartPoint `json:"points"`
}

type Summary struct {
	Stats      []models.StatCard            `json:"stats"`
	Chart      Chart                        `json:"chart"`
	Activities []models.Activity            `json:"activities"`
	Upcoming   []models.UpcomingAppointment `json:"upcoming"`
}

type Service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// Summary returns every widget, with the chart on the given timeframe.
func (s *Service) Summary(ctx context.Context, timeframe string) (*Summary, error) {
	d, err := s.repo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]models.StatCard, len(d.Stats))
	for i, card := range d.Stats {
		card.Value = FormatStat(card)
		stats[i] = card
	}

	activities := make([]models.Activity, len(d.Activities))
	for i, a := range d.Activities {
		a.Initials = models.Initials(a.UserName)
		activities[i] = a
	}

	upcoming := make([]models.UpcomingAppointment, len(d.Upcoming))
	for i, u := range d.Upcoming {
		u.Initials = models.Initials(u.PatientName)
		upcoming[i] = u
	}

	return &Summary{
		Stats:      stats,
		Chart:      chartOf(d, domain.ParseTimeframe(timeframe)),
		Activities: activities,
		Upcoming:   upcoming,
	}, nil
}

// Chart returns only the chart series.
func (s *Service) Chart(ctx context.Context, timeframe string) (*Chart, error) {
	d, err := s.repo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	c := chartOf(d, domain.ParseTimeframe(timeframe))
	return &c, nil
}

func chartOf(d *domain.Dashboard, tf domain.Timeframe) Chart {
	points := d.Monthly
	switch tf {
	case domain.TimeframeWeekly:
		points = d.Weekly
	case domain.TimeframeYearly:
		points = d.Yearly
	}
	if points == nil {
		points = []models.ChartPoint{}
	}
	return Chart{Timeframe: tf, Points: points}
}

// FormatStat renders a card amount with thousands separators, prefixed with
// "$" for currency cards.
func FormatStat(card models.StatCard) string {
	var n string
	if card.Amount == math.Trunc(card.Amount) {
		n = humanize.Comma(int64(card.Amount))
	} else {
		n = humanize.CommafWithDigits(card.Amount, 2)
	}
	if card.Format == "currency" {
		return "$" + n
	}
	return n
}

// Tooltip is the hover box of a chart point. It renders nothing when the
// pointer is not over a point.
func Tooltip(active bool, label string, point *models.ChartPoint) []string {
	if !active || point == nil {
		return nil
	}
	return []string{
		label,
		fmt.Sprintf("Patients: %d", point.Patients),
		fmt.Sprintf("Appointments: %d", point.Appointments),
	}
}
