package difficulty

import "testing"

func TestQuestionLevel(t *testing.T) {
	cases := []struct {
		rating int
		want   int
	}{
		{RatingUnavailable, DefaultQuestionLevel},
		{1, 10},
		{5, 6},
		{10, 1},
	}
	for _, c := range cases {
		if got := QuestionLevel(c.rating); got != c.want {
			t.Errorf("QuestionLevel(%d) = %d, want %d", c.rating, got, c.want)
		}
	}
}

func TestForRound(t *testing.T) {
	cases := []struct {
		name       string
		rating     int
		enemyLevel int
		wantLevel  int
		wantSecs   int
	}{
		// Fresh player against a level-5 enemy: question level 6,
		// clamp(13 - (5-6)) = 14 seconds.
		{"fresh player vs level 5", 5, 5, 6, 14},
		{"no rating vs level 5", RatingUnavailable, 5, 6, 14},
		{"even matchup", 5, 6, 6, 13},
		{"overleveled enemy hits floor", 1, 50, 10, 3},
		{"weak enemy hits ceiling", 10, 1, 1, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := ForRound(c.rating, c.enemyLevel)
			if b.QuestionLevel != c.wantLevel {
				t.Errorf("QuestionLevel = %d, want %d", b.QuestionLevel, c.wantLevel)
			}
			if b.TimeLimitSecs != c.wantSecs {
				t.Errorf("TimeLimitSecs = %d, want %d", b.TimeLimitSecs, c.wantSecs)
			}
		})
	}
}

func TestForRound_BudgetAlwaysInRange(t *testing.T) {
	for enemyLevel := 1; enemyLevel <= 50; enemyLevel++ {
		for rating := 1; rating <= 10; rating++ {
			b := ForRound(rating, enemyLevel)
			if b.TimeLimitSecs < MinTimeLimitSecs || b.TimeLimitSecs > MaxTimeLimitSecs {
				t.Fatalf("rating %d vs enemy %d: budget %ds outside [%d, %d]",
					rating, enemyLevel, b.TimeLimitSecs, MinTimeLimitSecs, MaxTimeLimitSecs)
			}
		}
	}
}
