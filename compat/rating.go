package compat

// Rating maps a score to the display band shown next to a food.
func Rating(score int, safe bool) string {
	if !safe || score == 0 {
		return "Avoid"
	}
	switch {
	case score >= 95:
		return "Perfect Match"
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Okay"
	case score >= 25:
		return "Poor Match"
	default:
		return "Avoid"
	}
}

// ScoreColor maps a score to the UI color band.
func ScoreColor(score int, safe bool) string {
	if !safe {
		return "red"
	}
	switch {
	case score >= 80:
		return "green"
	case score >= 60:
		return "yellow"
	default:
		return "orange"
	}
}
