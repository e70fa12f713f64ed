package main

import (
	"fmt"
	"github.com/gostonefire/pwscreen"
	"github.com/gostonefire/pwscreen/crt"
	"io"
)

// printResult - Writes the verdict and search costs of one password
func printResult(w io.Writer, result pwscreen.Result) {
	_, _ = fmt.Fprintf(w, "Checking password: %s\n", result.Password)
	_, _ = fmt.Fprintf(w, "Password strong: %t\n", result.Strong)
	for _, cost := range result.Costs {
		_, _ = fmt.Fprintf(w, "Search cost (%s, %s hash): %d\n", crt.Name(cost.Technique), hashLabel(cost.Hash), cost.Comparisons)
	}
	_, _ = fmt.Fprintln(w)
}

// printStat - Writes usage statistics of every table
func printStat(w io.Writer, reports []pwscreen.TableReport) {
	for _, r := range reports {
		var fill float64
		if r.Stat.Slots > 0 {
			fill = float64(r.Stat.UsedSlots) / float64(r.Stat.Slots)
		}
		_, _ = fmt.Fprintf(w, "Table (%s, %s hash): records=%d slots=%d used=%d (%.1f%%) longest run=%d\n",
			crt.Name(r.Technique), hashLabel(r.LoadHash), r.Stat.Records, r.Stat.Slots, r.Stat.UsedSlots, fill*100, r.Stat.LongestRun)
	}
}

// hashLabel - Name of a hash function as shown in reports, the legacy hash is reported as the old hash
func hashLabel(name string) string {
	if name == pwscreen.LegacyHashName {
		return "old"
	}

	return name
}
