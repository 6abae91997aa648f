package models

// CurrentWeather is the trimmed view of the upstream weather provider the
// banner needs.
type CurrentWeather struct {
	City        string  `json:"city"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}
