// Package settings holds the per-user view configuration and its debounced
// autosave.
package settings

import "time"

type ViewType string

const (
	ViewSpecific ViewType = "specific"
	ViewAll      ViewType = "all"
)

type YearType string

const (
	YearCalendar YearType = "calendar"
	YearAcademic YearType = "academic"
)

const (
	MinYear = 2024
	MaxYear = 2050
)

// Settings is the small per-user configuration record controlling which span
// of the multi-year grid is rendered and where quick-jump lands.
type Settings struct {
	ViewType   ViewType `json:"viewType"`
	YearType   YearType `json:"yearType"`
	StartYear  int      `json:"startYear"`
	EndYear    int      `json:"endYear"`
	QuickYear  int      `json:"quickYear"`
	QuickMonth int      `json:"quickMonth"`
}

func Default() Settings {
	now := time.Now()
	return Settings{
		ViewType:   ViewSpecific,
		YearType:   YearCalendar,
		StartYear:  now.Year(),
		EndYear:    now.Year(),
		QuickYear:  now.Year(),
		QuickMonth: int(now.Month()),
	}
}

// Normalize fills zero fields with defaults so partially stored records load
// cleanly.
func (s Settings) Normalize() Settings {
	def := Default()
	if s.ViewType != ViewSpecific && s.ViewType != ViewAll {
		s.ViewType = def.ViewType
	}
	if s.YearType != YearCalendar && s.YearType != YearAcademic {
		s.YearType = def.YearType
	}
	if s.StartYear == 0 {
		s.StartYear = def.StartYear
	}
	if s.EndYear == 0 {
		s.EndYear = def.EndYear
	}
	if s.EndYear < s.StartYear {
		s.EndYear = s.StartYear
	}
	if s.QuickYear == 0 {
		s.QuickYear = def.QuickYear
	}
	if s.QuickMonth < 1 || s.QuickMonth > 12 {
		s.QuickMonth = def.QuickMonth
	}
	return s
}

// YearMonth addresses one rendered month panel.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthsForYear expands one logical year into its month panels. A calendar
// year runs January through December; an academic year runs March through
// December plus January and February of the following year.
func MonthsForYear(year int, style YearType) []YearMonth {
	months := make([]YearMonth, 0, 12)
	if style == YearAcademic {
		for m := time.March; m <= time.December; m++ {
			months = append(months, YearMonth{Year: year, Month: m})
		}
		months = append(months,
			YearMonth{Year: year + 1, Month: time.January},
			YearMonth{Year: year + 1, Month: time.February},
		)
		return months
	}
	for m := time.January; m <= time.December; m++ {
		months = append(months, YearMonth{Year: year, Month: m})
	}
	return months
}

// Years lists the logical years rendered for the settings.
func (s Settings) Years() []int {
	start, end := s.StartYear, s.EndYear
	if s.ViewType == ViewAll {
		start, end = MinYear, MaxYear
	}
	if end < start {
		end = start
	}
	years := make([]int, 0, end-start+1)
	for y := start; y <= end; y++ {
		years = append(years, y)
	}
	return years
}
