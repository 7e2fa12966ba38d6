package score

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Scorecard
	}{
		{
			name: "all sections present",
			text: "Contact: jane@example.com\nSkills: Go, SQL\nExperience: 8 years",
			want: Scorecard{Contact: 10, Skills: 10, Experience: 10, Total: 30},
		},
		{
			name: "contact via phone keyword",
			text: "Phone: 555-0100\nEducation: BSc",
			want: Scorecard{Contact: 10, Total: 10},
		},
		{
			name: "nothing recognized",
			text: "A short note about nothing in particular",
			want: Scorecard{},
		},
		{
			name: "case insensitive",
			text: "EXPERIENCE\nSKILLS\nEMAIL",
			want: Scorecard{Contact: 10, Skills: 10, Experience: 10, Total: 30},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.text); got != tt.want {
				t.Fatalf("Evaluate = %+v, want %+v", got, tt.want)
			}
		})
	}
}
