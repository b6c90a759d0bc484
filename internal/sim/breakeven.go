package sim

// findCrossingYear scans consecutive months of diff(row) for a sign change
// (a sample landing exactly on zero counts) and linearly interpolates the
// crossing on the year axis. Returns nil when the series never changes sign.
func findCrossingYear(rows []MonthRow, diff func(MonthRow) float64) *float64 {
	for i := 0; i+1 < len(rows); i++ {
		y1 := diff(rows[i])
		y2 := diff(rows[i+1])
		if sign(y1) == sign(y2) {
			continue
		}

		x1 := rows[i].Year
		x2 := rows[i+1].Year
		if y1 == y2 {
			// Both samples sit on zero; the crossing is the first one.
			return &x1
		}
		year := x1 - y1*(x2-x1)/(y2-y1)
		return &year
	}
	return nil
}

func sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
