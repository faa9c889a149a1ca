package weather

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func nominalDay() DailyConditions {
	return DailyConditions{
		Date:             mustDate("2024-07-01"),
		TempMax:          28,
		TempMin:          21,
		WindSpeedMax:     12,
		WindGustMax:      18,
		PrecipitationSum: 2,
		UVIndexMax:       5,
		WeatherCode:      2,
	}
}

func TestEvaluateSafetyNominal(t *testing.T) {
	report := EvaluateSafety(nominalDay())

	require.Equal(t, LevelGood, report.Level)
	require.Empty(t, report.Warnings)
	require.Equal(t, []string{"Good conditions for beach activities"}, report.Recommendations)
}

func TestEvaluateSafetyHighWind(t *testing.T) {
	day := nominalDay()
	day.WindSpeedMax = 30

	report := EvaluateSafety(day)

	require.Equal(t, LevelCaution, report.Level)
	require.Contains(t, report.Warnings, "High wind speeds detected")
	require.Contains(t, report.Recommendations, "Avoid water activities")
}

func TestEvaluateSafetyDangerousGusts(t *testing.T) {
	day := nominalDay()
	day.WindGustMax = 40

	report := EvaluateSafety(day)

	require.Equal(t, LevelWarning, report.Level)
	require.Contains(t, report.Warnings, "Dangerous wind gusts")
}

func TestEvaluateSafetySevereCodeOverridesCaution(t *testing.T) {
	day := nominalDay()
	day.WindSpeedMax = 30
	day.WeatherCode = 85

	report := EvaluateSafety(day)

	require.Equal(t, LevelWarning, report.Level)
	// Append order follows rule order: wind first, severe weather last.
	require.Equal(t, []string{"High wind speeds detected", "Severe weather conditions"}, report.Warnings)
	require.Equal(t, []string{"Avoid water activities", "Avoid beach activities"}, report.Recommendations)
}

func TestEvaluateSafetySingleThresholds(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*DailyConditions)
		warning string
	}{
		{"uv", func(d *DailyConditions) { d.UVIndexMax = 9 }, "Very high UV index"},
		{"precipitation", func(d *DailyConditions) { d.PrecipitationSum = 12 }, "Heavy rainfall expected"},
		{"temperature", func(d *DailyConditions) { d.TempMax = 37 }, "Very hot conditions"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day := nominalDay()
			tc.mutate(&day)

			report := EvaluateSafety(day)

			require.Equal(t, LevelCaution, report.Level)
			require.Equal(t, []string{tc.warning}, report.Warnings)
		})
	}
}

func TestEvaluateSafetyIsPure(t *testing.T) {
	day := nominalDay()
	day.WindSpeedMax = 30
	day.UVIndexMax = 9

	first := EvaluateSafety(day)
	second := EvaluateSafety(day)

	require.Equal(t, first, second)
}

func TestLevelSerializesAsName(t *testing.T) {
	payload, err := json.Marshal(EvaluateSafety(nominalDay()))
	require.NoError(t, err)
	require.Contains(t, string(payload), `"level":"Good"`)
}

func TestSelectTodayClosestDate(t *testing.T) {
	days := []DailyConditions{
		{Date: mustDate("2024-06-28")},
		{Date: mustDate("2024-06-30")},
		{Date: mustDate("2024-07-02")},
	}

	idx, err := SelectToday(days, mustDate("2024-06-30").Add(6*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestSelectTodayTieKeepsEarlierIndex(t *testing.T) {
	days := []DailyConditions{
		{Date: mustDate("2024-06-29")},
		{Date: mustDate("2024-07-01")},
	}

	idx, err := SelectToday(days, mustDate("2024-06-30"))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
}

func TestSelectTodaySkipsMalformedRecords(t *testing.T) {
	days := []DailyConditions{
		{},
		{Date: mustDate("2024-07-01")},
	}

	idx, err := SelectToday(days, mustDate("2024-06-30"))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestSelectTodayEmpty(t *testing.T) {
	_, err := SelectToday(nil, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no usable daily conditions")
}

func mustDate(value string) time.Time {
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return ts
}
