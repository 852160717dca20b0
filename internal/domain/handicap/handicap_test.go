package handicap

import "testing"

func TestCourseHandicap(t *testing.T) {
	course := Course{Rating: 36, Slope: 113, Par: 36, Holes: 9}

	tests := []struct {
		name  string
		index float64
		want  int
	}{
		{name: "scratch", index: 0, want: 0},
		{name: "even index halves", index: 18, want: 9},
		{name: "rounds half away from zero", index: 9, want: 5},
		{name: "plus handicap", index: -2, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseHandicap(tt.index, course); got != tt.want {
				t.Fatalf("CourseHandicap(%v)=%d want=%d", tt.index, got, tt.want)
			}
		})
	}
}

func TestCourseHandicap_AppliesSlopeAndRating(t *testing.T) {
	course := Course{Rating: 35.5, Slope: 120, Par: 36, Holes: 9}
	// 10/2*120/113 = 5.31, plus -0.5 = 4.81
	if got := CourseHandicap(10, course); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestStrokeAllowance(t *testing.T) {
	tests := []struct {
		handicap int
		holes    int
		want     int
	}{
		{handicap: 9, holes: 9, want: 9},
		{handicap: 9, holes: 12, want: 9},
		{handicap: 9, holes: 5, want: 5},
		{handicap: 4, holes: 3, want: 1},
		{handicap: 7, holes: 0, want: 0},
	}

	for _, tt := range tests {
		if got := StrokeAllowance(tt.handicap, tt.holes); got != tt.want {
			t.Fatalf("StrokeAllowance(%d,%d)=%d want=%d", tt.handicap, tt.holes, got, tt.want)
		}
	}
}

func TestCourseValidate(t *testing.T) {
	if err := DefaultCourse().Validate(); err != nil {
		t.Fatalf("default course should validate: %v", err)
	}
	if err := (Course{Rating: 36, Slope: 20, Par: 36, Holes: 9}).Validate(); err == nil {
		t.Fatalf("expected slope error")
	}
}
