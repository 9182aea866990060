package progression

import "testing"

func TestExperienceForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 500},
		{3, 1000},
		{10, 4500},
	}
	for _, c := range cases {
		if got := ExperienceForLevel(c.level); got != c.want {
			t.Errorf("ExperienceForLevel(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestLevelForExperience(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{1499, 3}, // 1499/500 = 2, +1
		{1500, 4},
		{4500, 10},
	}
	for _, c := range cases {
		if got := LevelForExperience(c.xp); got != c.want {
			t.Errorf("LevelForExperience(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 60; level++ {
		if got := LevelForExperience(ExperienceForLevel(level)); got != level {
			t.Errorf("round trip for level %d gave %d", level, got)
		}
	}
}

func TestInfo(t *testing.T) {
	info := Info(750)
	if info.Level != 2 {
		t.Errorf("Level = %d, want 2", info.Level)
	}
	if info.XPForLevel != 500 || info.XPForNextLevel != 1000 {
		t.Errorf("thresholds = %d/%d, want 500/1000", info.XPForLevel, info.XPForNextLevel)
	}
	if info.XPIntoLevel != 250 || info.XPNeededForLevel != 500 {
		t.Errorf("into/needed = %d/%d, want 250/500", info.XPIntoLevel, info.XPNeededForLevel)
	}
	if info.ProgressPercent != 50 {
		t.Errorf("ProgressPercent = %f, want 50", info.ProgressPercent)
	}
}

func TestInfo_FreshPlayer(t *testing.T) {
	info := Info(0)
	if info.Level != 1 || info.XPIntoLevel != 0 || info.ProgressPercent != 0 {
		t.Errorf("unexpected fresh player info: %+v", info)
	}
}

func TestExperienceReward(t *testing.T) {
	cases := []struct {
		enemyLevel int
		want       int
	}{
		{1, 50},
		{5, 90},
		{10, 140},
	}
	for _, c := range cases {
		if got := ExperienceReward(c.enemyLevel); got != c.want {
			t.Errorf("ExperienceReward(%d) = %d, want %d", c.enemyLevel, got, c.want)
		}
	}
}
