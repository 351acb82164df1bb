package celestial

import "github.com/lixenwraith/stardrift/parameter"

// IsSunHour classifies an hour for sprite rendering: [6,19) draws the sun
func IsSunHour(hour int) bool {
	return hour >= parameter.SunHourStart && hour < parameter.SunHourEnd
}

// IsDaytime classifies an hour for UI copy: [7,19) is day
// The lower bound intentionally differs from IsSunHour; sunrise (06:00-07:00)
// renders a sun while copy still reads as night
func IsDaytime(hour int) bool {
	return hour >= parameter.DaytimeHourStart && hour < parameter.DaytimeHourEnd
}
