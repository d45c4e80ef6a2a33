package export

import (
	"fmt"
	"strings"
)

// EnergySVG renders both strings' energy histories as overlaid polylines,
// string 1 in green and string 2 in magenta, scaled to the larger series.
func EnergySVG(energy1, energy2 []float64, width, height int) string {
	if len(energy1) < 2 || len(energy2) < 2 {
		return ""
	}

	maxE := 0.0
	for _, v := range energy1 {
		if v > maxE {
			maxE = v
		}
	}
	for _, v := range energy2 {
		if v > maxE {
			maxE = v
		}
	}
	if maxE == 0 {
		maxE = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writePolyline(&sb, energy1, maxE, width, height, "#00ff88")
	writePolyline(&sb, energy2, maxE, width, height, "#ff00aa")

	sb.WriteString("</svg>")
	return sb.String()
}

func writePolyline(sb *strings.Builder, series []float64, maxV float64, width, height int, stroke string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, v := range series {
		x := float64(i) / float64(len(series)-1) * float64(width)
		y := float64(height) - v/maxV*float64(height)*0.95
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
}
