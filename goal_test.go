package investwise

import "testing"

func TestGoal_String(t *testing.T) {
	testCases := []struct {
		name string
		goal Goal
		want string
	}{
		{
			name: "target only",
			goal: Goal{Owner: "bob", Name: "Retirement", Target: M(100000, "USD")},
			want: "Retirement: target $100,000.00",
		},
		{
			name: "with progress",
			goal: Goal{Owner: "bob", Name: "Car", Target: M(30000, "USD"), Saved: M(5000, "USD")},
			want: "Car: target $30,000.00, saved $5,000.00",
		},
		{
			name: "with progress and deadline",
			goal: Goal{Owner: "bob", Name: "House", Target: M(250000, "USD"), Saved: M(40000, "USD"), Deadline: "2030-06"},
			want: "House: target $250,000.00, saved $40,000.00, by 2030-06",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.goal.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
