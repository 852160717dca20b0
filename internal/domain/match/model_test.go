package match

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{in: "COMPLETED", want: StatusCompleted},
		{in: "completed", want: StatusCompleted},
		{in: " Finalized ", want: StatusFinalized},
		{in: "final", want: StatusFinalized},
		{in: "in progress", want: StatusInProgress},
		{in: "in-progress", want: StatusInProgress},
		{in: "canceled", want: StatusCancelled},
		{in: "scheduled", want: StatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if err != nil {
				t.Fatalf("ParseStatus(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q)=%s want=%s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStatus_RejectsUnknown(t *testing.T) {
	for _, in := range []string{"postponed-ish", "", "   "} {
		if _, err := ParseStatus(in); err == nil {
			t.Fatalf("expected error for status %q", in)
		}
	}
}

func TestStatus_IsDecided(t *testing.T) {
	decided := map[Status]bool{
		StatusScheduled:  false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusFinalized:  true,
		StatusCancelled:  false,
	}
	for status, want := range decided {
		if got := status.IsDecided(); got != want {
			t.Fatalf("%s.IsDecided()=%v want=%v", status, got, want)
		}
	}
}
