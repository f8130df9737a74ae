package graphologyws

import (
	"fmt"
	"strconv"
	"strings"
)

func jsonNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func startSweepNotification(thresholds []float64) []byte {
	values := make([]string, len(thresholds))
	for i, t := range thresholds {
		values[i] = jsonNumber(t)
	}
	return []byte(fmt.Sprintf(
		`{"type": "sweepstart", "data": {"thresholds": [%s]}}`,
		strings.Join(values, ", "),
	))
}

func skipNotification(threshold float64) []byte {
	return []byte(fmt.Sprintf(
		`{"type": "skip", "data": {"threshold": %s, "reason": "no edges"}}`,
		jsonNumber(threshold),
	))
}

func endSweepNotification(sent, skipped int) []byte {
	return []byte(fmt.Sprintf(
		`{"type": "sweepend", "data": {"sent": %d, "skipped": %d}}`,
		sent, skipped,
	))
}
