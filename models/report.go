package models

// NutrientAverages holds the mean of each nutrient across all logged food entries.
type NutrientAverages struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type DayReportRow struct {
	Day   string  `json:"day"` // full weekday name, e.g. "Monday"
	Eaten float64 `json:"eaten"`
	Goal  float64 `json:"goal"`
}

type WeeklyReport struct {
	Averages  NutrientAverages `json:"averages"`
	GraphData []DayReportRow   `json:"graphData"`
}
