// ephemeris-table prints the sun/moon placement over a day for tuning the window table
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/stardrift/celestial"
	"github.com/lixenwraith/stardrift/parameter"
)

func main() {
	step := flag.Duration("step", 30*time.Minute, "Time between rows")
	offset := flag.Float64("offset", 0, "Developer time offset in hours")
	width := flag.Float64("width", 400, "Viewport width")
	height := flag.Float64("height", 800, "Viewport height")
	flag.Parse()

	if err := writeTable(os.Stdout, *step, *offset, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "ephemeris-table: %v\n", err)
		os.Exit(1)
	}
}

func writeTable(out io.Writer, step time.Duration, offset, width, height float64) error {
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %v", step)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "time\tbody\twindow\tprogress\tx\ty\tsize\talpha\tsun\tday\t")

	day := time.Duration(parameter.HoursPerDay) * time.Hour
	for t := time.Duration(0); t < day; t += step {
		hours := t.Hours()
		clock := fmt.Sprintf("%02d:%02d", int(t.Hours()), int(t.Minutes())%60)
		adjusted := int(hours+offset+parameter.HoursPerDay) % int(parameter.HoursPerDay)

		b, ok := celestial.Position(hours, offset, width, height)
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t-\t-\t%v\t%v\t\n", clock, celestial.IsSunHour(adjusted), celestial.IsDaytime(adjusted))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.1f\t%.1f\t%.0f\t%.2f\t%v\t%v\t\n",
			clock, b.Kind, b.Window, b.Progress, b.X, b.Y, b.Size, b.Alpha,
			celestial.IsSunHour(adjusted), celestial.IsDaytime(adjusted))
	}
	return w.Flush()
}
