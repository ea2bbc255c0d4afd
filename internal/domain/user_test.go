package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int64
		level int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{10000, 11},
	}

	for _, c := range cases {
		assert.Equal(t, c.level, LevelForXP(c.xp), "xp=%d", c.xp)
	}
}

func TestLevelForXPNegative(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(-500))
}

func TestAddXPLevelUp(t *testing.T) {
	user := &User{Level: 1}

	result := user.AddXP(250)

	assert.Equal(t, int64(250), result.NewXP)
	assert.Equal(t, 1, result.OldLevel)
	assert.Equal(t, 2, result.NewLevel)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, user.Level)
}

func TestAddXPNoLevelUp(t *testing.T) {
	user := &User{Level: 1, ExperiencePoints: 10}

	result := user.AddXP(20)

	assert.Equal(t, int64(30), result.NewXP)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 1, user.Level)
}

func TestAddXPLevelIsMonotonic(t *testing.T) {
	// A manually boosted level never drops, even when the formula
	// says the XP total corresponds to a lower one.
	user := &User{Level: 5, ExperiencePoints: 0}

	result := user.AddXP(100)

	assert.Equal(t, 5, user.Level)
	assert.Equal(t, 5, result.NewLevel)
	assert.False(t, result.LeveledUp)
}

func TestAddXPCrossesMultipleLevels(t *testing.T) {
	user := &User{Level: 1}

	result := user.AddXP(2500)

	assert.Equal(t, 6, result.NewLevel)
	assert.True(t, result.LeveledUp)
}
