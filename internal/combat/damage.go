package combat

import "time"

// DamageModel maps the rating/enemy-level matchup to damage amounts. Both
// directions must be monotonic: raising the rating never increases damage
// taken and never decreases damage dealt.
type DamageModel interface {
	DamageDealt(rating, enemyLevel int) int
	DamageTaken(rating, enemyLevel int) int
}

// Config tunes an encounter.
type Config struct {
	// FeedbackDelay is how long the round result stays on screen before the
	// next question or the end of the encounter.
	FeedbackDelay time.Duration

	Damage DamageModel
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		FeedbackDelay: 2 * time.Second,
		Damage:        LinearDamage{},
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FeedbackDelay <= 0 {
		c.FeedbackDelay = d.FeedbackDelay
	}
	if c.Damage == nil {
		c.Damage = d.Damage
	}
	return c
}

// LinearDamage scales damage with the gap between rating and enemy level:
// base 12, ±2 per level of gap, clamped into [4, 30]. A player outskilling
// the enemy hits harder and gets hit softer; both stay positive so every
// round moves a health bar.
type LinearDamage struct{}

const (
	damageBase = 12
	damageStep = 2
	damageMin  = 4
	damageMax  = 30
)

func clampDamage(n int) int {
	if n < damageMin {
		return damageMin
	}
	if n > damageMax {
		return damageMax
	}
	return n
}

func (LinearDamage) DamageDealt(rating, enemyLevel int) int {
	return clampDamage(damageBase + damageStep*(rating-enemyLevel))
}

func (LinearDamage) DamageTaken(rating, enemyLevel int) int {
	return clampDamage(damageBase + damageStep*(enemyLevel-rating))
}
