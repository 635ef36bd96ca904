package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/asteroids/debugui"
	"github.com/plus3/asteroids/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSortSystems(t *testing.T) {
	systems := []ecs.SystemStats{
		{Name: "Collision", AvgDuration: 3 * time.Millisecond, MaxDuration: 4 * time.Millisecond},
		{Name: "AsteroidMover", AvgDuration: 1 * time.Millisecond, MaxDuration: 9 * time.Millisecond},
		{Name: "PlayerControl", AvgDuration: 2 * time.Millisecond, MaxDuration: 2 * time.Millisecond},
	}
	names := func() []string {
		var out []string
		for _, s := range systems {
			out = append(out, s.Name)
		}
		return out
	}

	debugui.SortSystems(systems, 0, false)
	assert.Equal(t, []string{"AsteroidMover", "Collision", "PlayerControl"}, names())

	debugui.SortSystems(systems, 1, true)
	assert.Equal(t, []string{"Collision", "PlayerControl", "AsteroidMover"}, names())

	debugui.SortSystems(systems, 3, false)
	assert.Equal(t, []string{"PlayerControl", "Collision", "AsteroidMover"}, names())
}
