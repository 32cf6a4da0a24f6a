package core

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		total int
		done  int
		want  int
	}{
		{"no tasks", 0, 0, 0},
		{"none done", 10, 0, 0},
		{"three of ten", 10, 3, 30},
		{"floor not round", 3, 1, 33},
		{"two thirds", 3, 2, 66},
		{"all done", 7, 7, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var days DayTasks
			for i := 0; i < tt.total; i++ {
				d := i % Days
				days[d] = append(days[d], Task{ID: i, Done: i < tt.done})
			}
			if got := Percent(days); got != tt.want {
				t.Errorf("Percent = %d, want %d", got, tt.want)
			}
		})
	}
}
