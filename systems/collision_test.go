package systems_test

import (
	"testing"

	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/ecs"
	"github.com/stretchr/testify/assert"
)

func TestPlayerDeathReloadsWorld(t *testing.T) {
	h := newHarness(t)
	p := h.player(t)
	p.Player.Health = 1
	h.game().Score = 50
	h.game().Level = 3
	oldPlayer := p.EntityId

	rock := h.spawnAsteroidAt(p.Position.X+10, p.Position.Y+10, 50)

	h.scheduler.Once(tick)
	assert.False(t, h.storage.Alive(oldPlayer))
	assert.False(t, h.storage.Alive(rock))
	assert.Equal(t, 0, h.playerCount())

	h.scheduler.Once(tick)
	assert.Equal(t, 1, h.playerCount())
	assert.Equal(t, h.cfg.Player.StartHealth, h.player(t).Player.Health)
	assert.Equal(t, components.GameData{Level: 1}, *h.game())
	assert.Len(t, h.asteroids(), 1, "reload spawns one seed asteroid")
}

func TestPlayerHitCostsHealth(t *testing.T) {
	h := newHarness(t, "collision")
	h.clearAsteroids()
	p := h.player(t)

	rock := h.spawnAsteroidAt(p.Position.X+5, p.Position.Y+5, 40)
	h.scheduler.Once(tick)

	assert.Equal(t, h.cfg.Player.StartHealth-1, h.player(t).Player.Health)
	assert.False(t, h.storage.Alive(rock))
}

func TestInvinciblePlayerIsUntouched(t *testing.T) {
	h := newHarness(t, "collision")
	h.clearAsteroids()
	h.game().InvinciblePlayer = true
	p := h.player(t)
	p.Player.Health = 1

	rock := h.spawnAsteroidAt(p.Position.X, p.Position.Y, 60)
	h.scheduler.Once(tick)

	assert.Equal(t, 1, h.player(t).Player.Health)
	assert.True(t, h.storage.Alive(rock))
	assert.True(t, h.storage.Alive(p.EntityId))
}

func TestPlayerCollisionOnlyChecksOwnQuadrant(t *testing.T) {
	h := newHarness(t, "collision")
	h.clearAsteroids()
	p := h.player(t)
	p.Position.X, p.Position.Y = 390, 290

	// Overlapping, but the cached quadrant says the asteroid is elsewhere.
	rock := h.spawnAsteroidAt(410, 310, 40)
	assert.Equal(t, components.BottomRight, ecs.ReadComponent[components.Asteroid](h.storage, rock).Quadrant)

	h.scheduler.Once(tick)
	assert.True(t, h.storage.Alive(rock))
	assert.Equal(t, h.cfg.Player.StartHealth, h.player(t).Player.Health)
}

func TestPlayerCollisionUsesCombinedRadii(t *testing.T) {
	h := newHarness(t, "collision")
	h.clearAsteroids()
	p := h.player(t)
	p.Position.X, p.Position.Y = 500, 400

	// Player is 55 wide, asteroid 45: hits under 50 apart.
	near := h.spawnAsteroidAt(549, 400, 45)
	far := h.spawnAsteroidAt(500, 451, 45)
	h.scheduler.Once(tick)

	assert.False(t, h.storage.Alive(near))
	assert.True(t, h.storage.Alive(far))
}

func TestLaserHitScoresByLevel(t *testing.T) {
	h := newHarness(t, "collision")
	h.clearAsteroids()
	h.game().Level = 3

	rock := h.spawnAsteroidAt(100, 100, 40)
	hit := h.spawner.SpawnLaser(h.storage, components.FireIntent{X: 115, Y: 100})
	miss := h.spawner.SpawnLaser(h.storage, components.FireIntent{X: 121, Y: 100})

	h.scheduler.Once(tick)

	assert.False(t, h.storage.Alive(rock))
	assert.False(t, h.storage.Alive(hit))
	assert.True(t, h.storage.Alive(miss), "laser size is not part of the check")
	assert.Equal(t, 30, h.game().Score)
}

func TestMarkedAsteroidCanBeHitTwice(t *testing.T) {
	h := newHarness(t, "collision")
	h.clearAsteroids()

	rock := h.spawnAsteroidAt(100, 100, 40)
	h.spawner.SpawnLaser(h.storage, components.FireIntent{X: 100, Y: 100})
	h.spawner.SpawnLaser(h.storage, components.FireIntent{X: 101, Y: 100})

	removed := h.scheduler.Once(tick)

	assert.Equal(t, 3, removed, "the asteroid is removed once")
	assert.False(t, h.storage.Alive(rock))
	assert.Equal(t, 20, h.game().Score)
	assert.Equal(t, 0, h.laserCount())
}
