// Package report renders Brewfather records as plain-text reports for agent tools.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// NotAvailable marks an absent value.
	NotAvailable = "N/A"

	timeLayout      = "2006-01-02 15:04:05"
	shortTimeLayout = "01-02 15:04"
)

// Renderer formats records. Timestamps are shown in its location.
type Renderer struct {
	loc *time.Location
}

// New returns a Renderer for loc. A nil loc means time.Local.
func New(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{loc: loc}
}

// Timestamp renders epoch milliseconds, or NotAvailable when ms is nil.
func (r *Renderer) Timestamp(ms *int64) string {
	if ms == nil {
		return NotAvailable
	}
	return r.millis(*ms, timeLayout)
}

func (r *Renderer) millis(ms int64, layout string) string {
	return time.UnixMilli(ms).In(r.loc).Format(layout)
}

type field struct {
	label string
	value string
}

func writeFields(b *strings.Builder, fields []field) {
	for _, f := range fields {
		b.WriteString(f.label)
		b.WriteString(": ")
		b.WriteString(f.value)
		b.WriteByte('\n')
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optNum(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return num(*v)
}

func optInt(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}

func optStr(v *string) string {
	if v == nil || *v == "" {
		return NotAvailable
	}
	return *v
}

func orNA[T ~string](v T) string {
	if v == "" {
		return NotAvailable
	}
	return string(v)
}

func optBool(v *bool) string {
	if v == nil {
		return NotAvailable
	}
	return yesNo(*v)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// withUnit appends unit to a present value only.
func withUnit(v *float64, unit string) string {
	if v == nil {
		return NotAvailable
	}
	return num(*v) + unit
}

// fixed renders v rounded to places decimals.
func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// signedDelta renders measured - target with an explicit sign, computed in decimal so
// 1.050 - 1.045 is exactly +0.005.
func signedDelta(measured, target float64, places int32) string {
	d := decimal.NewFromFloat(measured).Sub(decimal.NewFromFloat(target)).Round(places)
	s := d.StringFixed(places)
	if d.Sign() >= 0 {
		return "+" + s
	}
	return s
}
