package core

// Percent computes floor(done * 100 / total) over all eight days.
// An empty plan is 0%, never a division error.
func Percent(days DayTasks) int {
	total, done := 0, 0
	for d := 0; d < Days; d++ {
		for _, t := range days[d] {
			total++
			if t.Done {
				done++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return done * 100 / total
}
