package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// thousands formats n with comma separators.
func thousands(n int) string { return printer.Sprintf("%d", n) }

// compact formats v as 12.5K, 2.4M or 2.4TB style short numbers.
func compact(v float64, units ...string) string {
	if len(units) == 0 {
		units = []string{"", "K", "M", "B", "T"}
	}
	i := 0
	for math.Abs(v) >= 1000 && i < len(units)-1 {
		v /= 1000
		i++
	}
	s := fmt.Sprintf("%.1f", v)
	if math.Abs(v) >= 100 || v == math.Trunc(v) {
		s = fmt.Sprintf("%.0f", v)
	}
	return s + units[i]
}

// bytesize formats a byte count in decimal units.
func bytesize(b float64) string {
	return compact(b, "B", "KB", "MB", "GB", "TB", "PB")
}

// dollars formats whole dollars as $840K.
func dollars(v float64) string { return "$" + compact(v) }

// duration formats short query times in ms and windows in hours.
func duration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d%time.Hour == 0:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return d.Round(time.Second).String()
	}
}

// trend renders a change as "↑ 3.2% vs avg" or "↓ 15% vs yesterday".
func trend(c Change, unit, suffix string) string {
	arrow := "↑"
	if c < 0 {
		arrow = "↓"
	}
	v := math.Abs(float64(c))
	num := fmt.Sprintf("%.1f", v)
	if v == math.Trunc(v) {
		num = fmt.Sprintf("%.0f", v)
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s%s %s", arrow, num, unit, suffix))
}
