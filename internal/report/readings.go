package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"brewfather-mcp/internal/model"
)

const (
	// DefaultReadingsWindow is the number of most recent readings summarized.
	DefaultReadingsWindow = 10
	// MinTrendReadings is the smallest window a trend is computed for.
	MinTrendReadings = 3
)

var (
	tempThreshold = decimal.RequireFromString("0.5")
	sgThreshold   = decimal.RequireFromString("0.002")
)

// Direction classifies the change between the first and last reading of a window.
type Direction string

const (
	Rising  Direction = "Rising"
	Falling Direction = "Falling"
	Stable  Direction = "Stable"
)

// FieldTrend is the change of one measured field over a window.
type FieldTrend struct {
	Change    float64
	Direction Direction
}

// Trend holds the per-field trends. A nil field means the first or last reading lacked it.
type Trend struct {
	Temp *FieldTrend
	SG   *FieldTrend
}

// AnalyzeTrend compares the first and last reading of window. It reports false when the
// window has fewer than MinTrendReadings readings.
func AnalyzeTrend(window []model.Reading) (Trend, bool) {
	if len(window) < MinTrendReadings {
		return Trend{}, false
	}
	first, last := window[0], window[len(window)-1]
	return Trend{
		Temp: fieldTrend(first.Temp, last.Temp, tempThreshold),
		SG:   fieldTrend(first.SG, last.SG, sgThreshold),
	}, true
}

func fieldTrend(first, last *float64, threshold decimal.Decimal) *FieldTrend {
	if first == nil || last == nil {
		return nil
	}
	change := decimal.NewFromFloat(*last).Sub(decimal.NewFromFloat(*first))
	dir := Stable
	switch {
	case change.GreaterThan(threshold):
		dir = Rising
	case change.LessThan(threshold.Neg()):
		dir = Falling
	}
	return &FieldTrend{Change: change.InexactFloat64(), Direction: dir}
}

// RecentWindow returns the last limit readings, or all of them when limit is not positive
// or larger than the slice.
func RecentWindow(readings []model.Reading, limit int) []model.Reading {
	if limit <= 0 || len(readings) <= limit {
		return readings
	}
	return readings[len(readings)-limit:]
}

// LastReading renders the most recent sensor sample of a batch.
func (r *Renderer) LastReading(reading *model.Reading) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LATEST SENSOR READING\n%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(&sb, "Device: %s (%s)\n", orNA(reading.Name), orNA(reading.DeviceType))
	fmt.Fprintf(&sb, "Reading Time: %s\n", r.Timestamp(reading.Time))
	fmt.Fprintf(&sb, "Device ID: %s\n\n", orNA(reading.ID))
	sb.WriteString("MEASUREMENTS:\n-------------")

	if reading.Temp != nil {
		fmt.Fprintf(&sb, "\nTemperature: %s°C", num(*reading.Temp))
	}
	if reading.SG != nil {
		fmt.Fprintf(&sb, "\nSpecific Gravity: %.4f", *reading.SG)
	}
	if reading.Battery != nil {
		fmt.Fprintf(&sb, "\nBattery: %.1f%%", *reading.Battery)
	}
	if reading.RSSI != nil {
		fmt.Fprintf(&sb, "\nSignal: %.1f dBm", *reading.RSSI)
	}
	if reading.TargetTemp != nil {
		fmt.Fprintf(&sb, "\nTarget Temp: %s°C", num(*reading.TargetTemp))
	}
	if reading.PH != nil {
		fmt.Fprintf(&sb, "\npH: %s", num(*reading.PH))
	}
	if reading.Pressure != nil {
		fmt.Fprintf(&sb, "\nPressure: %s", num(*reading.Pressure))
	}
	if reading.Comment != nil && *reading.Comment != "" {
		fmt.Fprintf(&sb, "\nComment: %s", *reading.Comment)
	}
	sb.WriteByte('\n')

	return sb.String()
}

func deviceName(reading model.Reading) string {
	for _, s := range []string{reading.Name, reading.ID, reading.DeviceType} {
		if s != "" {
			return s
		}
	}
	return "Unknown Device"
}

// ReadingsSummary renders the last limit readings and, for windows of at least
// MinTrendReadings, the temperature and gravity trends.
func (r *Renderer) ReadingsSummary(readings []model.Reading, limit int) string {
	if len(readings) == 0 {
		return "No sensor readings found for this batch."
	}
	window := RecentWindow(readings, limit)

	var sb strings.Builder
	fmt.Fprintf(&sb, "RECENT SENSOR READINGS SUMMARY\n%s\n\n", strings.Repeat("=", 50))
	fmt.Fprintf(&sb, "Total readings available: %d\n", len(readings))
	fmt.Fprintf(&sb, "Showing latest %d readings:\n\n", len(window))

	for _, reading := range window {
		when := NotAvailable
		if reading.Time != nil {
			when = r.millis(*reading.Time, shortTimeLayout)
		}
		line := when + " | " + deviceName(reading)
		if reading.Temp != nil {
			line += fmt.Sprintf(" | %.1f°C", *reading.Temp)
		}
		if reading.SG != nil {
			line += fmt.Sprintf(" | SG %.4f", *reading.SG)
		}
		if reading.Battery != nil {
			line += fmt.Sprintf(" | %.0f%%", *reading.Battery)
		}
		sb.WriteString(line + "\n")
	}

	if trend, ok := AnalyzeTrend(window); ok {
		sb.WriteString("\nTREND ANALYSIS:\n")
		if trend.Temp != nil {
			fmt.Fprintf(&sb, "Temperature: %s (%+.1f°C)\n", trend.Temp.Direction, trend.Temp.Change)
		}
		if trend.SG != nil {
			fmt.Fprintf(&sb, "Specific Gravity: %s (%+.4f)\n", trend.SG.Direction, trend.SG.Change)
		}
	}

	return sb.String()
}
