package services

import (
	"math"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"github.com/Nemoeiei/calories-guard/utils"
)

// ReportService rolls daily summaries up into week/month views. It only
// reads the materialized summaries, never the meal items.
type ReportService struct {
	summaries *SummaryService
}

func NewReportService(ss *SummaryService) *ReportService {
	return &ReportService{summaries: ss}
}

type PeriodReport struct {
	From        time.Time             `json:"from"`
	To          time.Time             `json:"to"`
	Days        []models.DailySummary `json:"days"`
	GoalMetDays int                   `json:"goal_met_days"`

	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgCarbs    float64 `json:"avg_carbs"`
	AvgFat      float64 `json:"avg_fat"`

	// Calorie share of each macro across the period.
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

// Weekly reports the Monday-to-Sunday week containing the given date.
func (s *ReportService) Weekly(userID uint, date time.Time) (*PeriodReport, error) {
	day := truncateToDay(date)
	// Monday = 0 ... Sunday = 6
	offset := (int(day.Weekday()) + 6) % 7
	from := day.AddDate(0, 0, -offset)
	to := from.AddDate(0, 0, 6)
	return s.build(userID, from, to)
}

// Monthly reports the calendar month containing the given date.
func (s *ReportService) Monthly(userID uint, date time.Time) (*PeriodReport, error) {
	day := truncateToDay(date)
	from := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 1, -1)
	return s.build(userID, from, to)
}

func (s *ReportService) build(userID uint, from, to time.Time) (*PeriodReport, error) {
	days, err := s.summaries.Range(userID, from, to)
	if err != nil {
		return nil, err
	}

	report := &PeriodReport{From: from, To: to, Days: days}
	if len(days) == 0 {
		return report, nil
	}

	var cal, protein, carbs, fat float64
	for _, d := range days {
		cal += d.TotalCalories
		protein += d.TotalProtein
		carbs += d.TotalCarbs
		fat += d.TotalFat
		if d.IsGoalMet {
			report.GoalMetDays++
		}
	}

	n := float64(len(days))
	round1 := func(f float64) float64 { return math.Round(f*10) / 10 }
	report.AvgCalories = round1(cal / n)
	report.AvgProtein = round1(protein / n)
	report.AvgCarbs = round1(carbs / n)
	report.AvgFat = round1(fat / n)
	report.ProteinPct, report.CarbsPct, report.FatPct = utils.MacroPercentages(protein, carbs, fat)

	return report, nil
}
