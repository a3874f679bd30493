package app

import (
	"fmt"
	"strconv"
)

// HUD returns the debug text, one entry per line. Empty entries keep their
// line slot but draw nothing.
func (v *Viewer) HUD() []string {
	lines := []string{
		fmt.Sprintf("Hold an F-key and press %s/%s", v.Keys.Decrease, v.Keys.Increase),
		fmt.Sprintf("to change a value  [hold %s to repeat]", v.Keys.Fast),
		"",
	}
	for _, t := range v.Panel {
		lines = append(lines, fmt.Sprintf("%-3s %-12s = %s", t.Hold(), t.Label(), t.Value()))
	}
	status := "not loaded"
	if v.Sheet != nil {
		status = strconv.Itoa(v.Sheet.Width) + "x" + strconv.Itoa(v.Sheet.Height)
	}
	return append(lines,
		"",
		fmt.Sprintf("frame        = %d / %d", v.Seq.Frame(), v.Seq.Frames),
		fmt.Sprintf("accum        = %.3f", v.Seq.Accum()),
		"sheet        = "+status,
	)
}
