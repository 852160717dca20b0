package handicap

import (
	"fmt"
	"math"
)

const (
	// StandardSlope is the slope of a course of standard difficulty.
	StandardSlope = 113
	FullRound     = 9
)

// Course holds the rating constants used to turn a handicap index into
// strokes for a nine-hole round.
type Course struct {
	Rating float64
	Slope  float64
	Par    int
	Holes  int
}

func DefaultCourse() Course {
	return Course{Rating: 35.5, Slope: 120, Par: 36, Holes: FullRound}
}

func (c Course) Validate() error {
	if c.Slope < 55 || c.Slope > 155 {
		return fmt.Errorf("course slope must be between 55 and 155, got %v", c.Slope)
	}
	if c.Rating <= 0 {
		return fmt.Errorf("course rating must be positive, got %v", c.Rating)
	}
	if c.Par <= 0 {
		return fmt.Errorf("course par must be positive, got %d", c.Par)
	}
	if c.Holes <= 0 {
		return fmt.Errorf("course holes must be positive, got %d", c.Holes)
	}
	return nil
}

// CourseHandicap converts an 18-hole handicap index into a nine-hole course
// handicap: half the index scaled by slope, plus rating minus par.
func CourseHandicap(index float64, course Course) int {
	slope := course.Slope
	if slope <= 0 {
		slope = StandardSlope
	}
	raw := (index/2)*(slope/StandardSlope) + (course.Rating - float64(course.Par))
	return int(math.Round(raw))
}

// StrokeAllowance prorates a course handicap by the holes actually played.
func StrokeAllowance(courseHandicap, holesPlayed int) int {
	if holesPlayed <= 0 {
		return 0
	}
	if holesPlayed >= FullRound {
		return courseHandicap
	}
	return int(math.Round(float64(courseHandicap) * float64(holesPlayed) / FullRound))
}
