package progression

// Level progression: every level is a 500 XP bracket.
//   Level 1: 0-499 XP
//   Level 2: 500-999 XP
//   Level n: starts at (n-1)*500 XP
const xpPerLevel = 500

// ExperienceForLevel returns the total XP threshold at which a level begins.
func ExperienceForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * xpPerLevel
}

// LevelForExperience returns the level reached with the given total XP.
func LevelForExperience(xp int) int {
	if xp < xpPerLevel {
		return 1
	}
	return xp/xpPerLevel + 1
}

// LevelInfo describes a player's position within their current level.
type LevelInfo struct {
	Level            int
	CurrentXP        int
	XPForLevel       int // threshold where the current level starts
	XPForNextLevel   int // threshold where the next level starts
	XPIntoLevel      int
	XPNeededForLevel int
	ProgressPercent  float64
}

// Info derives the complete level breakdown for a total XP amount.
func Info(xp int) LevelInfo {
	level := LevelForExperience(xp)
	floor := ExperienceForLevel(level)
	ceil := ExperienceForLevel(level + 1)
	into := xp - floor
	needed := ceil - floor

	return LevelInfo{
		Level:            level,
		CurrentXP:        xp,
		XPForLevel:       floor,
		XPForNextLevel:   ceil,
		XPIntoLevel:      into,
		XPNeededForLevel: needed,
		ProgressPercent:  float64(into) / float64(needed) * 100,
	}
}

// ExperienceReward returns the XP granted for defeating an enemy:
// (enemyLevel + 4) * 10, so a level-1 enemy is worth 50 XP.
func ExperienceReward(enemyLevel int) int {
	return (enemyLevel + 4) * 10
}
