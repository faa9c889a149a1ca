package weather

import (
	"time"

	apperrors "github.com/coastally/coastally-api/pkg/errors"
	"github.com/coastally/coastally-api/pkg/util"
)

// Level grades beach safety. The order is meaningful: rules may only raise
// the level, never lower it.
type Level int

const (
	LevelUnknown Level = iota
	LevelGood
	LevelCaution
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelGood:
		return "Good"
	case LevelCaution:
		return "Caution"
	case LevelWarning:
		return "Warning"
	default:
		return "Unknown"
	}
}

// MarshalJSON serializes the level as its display name.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// Report is the safety assessment derived from one day of conditions.
// Warnings and recommendations keep the order the rules fired in.
type Report struct {
	Level           Level           `json:"level"`
	Warnings        []string        `json:"warnings"`
	Recommendations []string        `json:"recommendations"`
	Conditions      DailyConditions `json:"conditions"`
}

type safetyRule struct {
	fires          func(DailyConditions) bool
	level          Level
	warning        string
	recommendation string
}

// The rule set mirrors the published beach advisories: each rule is
// independent and escalates the level to at least its own tier.
var safetyRules = []safetyRule{
	{
		fires:          func(d DailyConditions) bool { return d.WindSpeedMax > 25 },
		level:          LevelCaution,
		warning:        "High wind speeds detected",
		recommendation: "Avoid water activities",
	},
	{
		fires:          func(d DailyConditions) bool { return d.WindGustMax > 35 },
		level:          LevelWarning,
		warning:        "Dangerous wind gusts",
		recommendation: "Stay away from the beach",
	},
	{
		fires:          func(d DailyConditions) bool { return d.UVIndexMax > 8 },
		level:          LevelCaution,
		warning:        "Very high UV index",
		recommendation: "Use strong sunscreen and seek shade",
	},
	{
		fires:          func(d DailyConditions) bool { return d.PrecipitationSum > 10 },
		level:          LevelCaution,
		warning:        "Heavy rainfall expected",
		recommendation: "Check local conditions before visiting",
	},
	{
		fires:          func(d DailyConditions) bool { return d.TempMax > 35 },
		level:          LevelCaution,
		warning:        "Very hot conditions",
		recommendation: "Stay hydrated and take frequent breaks",
	},
	{
		fires:          func(d DailyConditions) bool { return d.WeatherCode >= 80 },
		level:          LevelWarning,
		warning:        "Severe weather conditions",
		recommendation: "Avoid beach activities",
	},
}

// EvaluateSafety runs the threshold rules against one day of conditions.
// Pure: the same record always yields the same report. The level is the
// monotonic max of every fired rule's tier, starting at Good.
func EvaluateSafety(day DailyConditions) Report {
	level := LevelGood
	warnings := []string{}
	recommendations := []string{}

	for _, rule := range safetyRules {
		if !rule.fires(day) {
			continue
		}
		if rule.level > level {
			level = rule.level
		}
		warnings = append(warnings, rule.warning)
		recommendations = append(recommendations, rule.recommendation)
	}

	if len(warnings) == 0 {
		recommendations = append(recommendations, "Good conditions for beach activities")
	}

	return Report{
		Level:           level,
		Warnings:        warnings,
		Recommendations: recommendations,
		Conditions:      day,
	}
}

// UnavailableReport is returned when no usable day of conditions exists.
func UnavailableReport() Report {
	return Report{
		Level:           LevelUnknown,
		Warnings:        []string{"Weather data unavailable"},
		Recommendations: []string{"Check local weather conditions before visiting"},
	}
}

// SelectToday picks the record whose date is closest to now, ties broken by
// the earlier index. Records without a date are skipped as malformed.
func SelectToday(days []DailyConditions, now time.Time) (int, error) {
	best := -1
	bestDistance := 0.0
	for i, day := range days {
		if day.Date.IsZero() {
			continue
		}
		distance := util.DayDistance(day.Date, now)
		if best == -1 || distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	if best == -1 {
		return 0, apperrors.Wrap("incomplete_data", "no usable daily conditions", nil)
	}
	return best, nil
}
