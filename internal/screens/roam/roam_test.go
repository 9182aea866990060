package roam

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"quizdungeon/internal/geom"
	"quizdungeon/internal/router"
	"quizdungeon/internal/screens/encounter"
	"quizdungeon/internal/world"
)

func newTestRoam() *RoamScreen {
	return New(Params{UserID: "tester", Level: 1})
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestRoamScreen_MovementAndFacing(t *testing.T) {
	r := newTestRoam()

	r.Update(keyPress('l'))
	if r.player.X != 2 || r.player.Facing != geom.FacingRight {
		t.Errorf("player at (%v,%v) facing %v", r.player.X, r.player.Y, r.player.Facing)
	}

	// Walking into the wall turns but does not move.
	for i := 0; i < 10; i++ {
		r.Update(keyPress('h'))
	}
	if r.player.X != 0 {
		t.Errorf("player.X = %v, want 0 at the wall", r.player.X)
	}
	if r.player.Facing != geom.FacingLeft {
		t.Errorf("facing = %v, want left", r.player.Facing)
	}
}

func TestRoamScreen_LiveEnemyBlocksCell(t *testing.T) {
	r := newTestRoam()
	enemy := r.room.Enemies[0]
	r.player.X, r.player.Y = enemy.X-1, enemy.Y
	r.player.Facing = geom.FacingRight

	r.Update(keyPress('l'))
	if r.player.X != enemy.X-1 {
		t.Errorf("player walked onto a live enemy: X = %v", r.player.X)
	}

	enemy.HP = 0
	r.Update(keyPress('l'))
	if r.player.X != enemy.X {
		t.Errorf("player blocked by a dead enemy: X = %v", r.player.X)
	}
}

func TestRoamScreen_AttackNothingInRange(t *testing.T) {
	r := newTestRoam()
	r.player.X, r.player.Y = 1, 2
	r.player.Facing = geom.FacingLeft

	_, cmd := r.Update(keyPress(' '))
	if cmd != nil {
		t.Fatal("attack into empty space produced a command")
	}
	if r.notice != "Nichts in Reichweite." {
		t.Errorf("notice = %q", r.notice)
	}
	if !strings.Contains(r.View(80, 24), "Nichts in Reichweite.") {
		t.Error("view missing miss notice")
	}
}

func TestRoamScreen_AttackOpensEncounter(t *testing.T) {
	r := newTestRoam()
	enemy := r.room.Enemies[0]
	r.player.X, r.player.Y = enemy.X-1, enemy.Y
	r.player.Facing = geom.FacingRight

	_, cmd := r.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("attack in range produced no command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("attack command returned %T", cmd())
	}
	if _, ok := push.Screen.(*encounter.EncounterScreen); !ok {
		t.Errorf("pushed screen is %T", push.Screen)
	}
}

func TestRoamScreen_ClearedRoomAdvances(t *testing.T) {
	r := newTestRoam()
	for _, e := range r.room.Enemies {
		e.HP = 0
	}
	if !r.cleared() {
		t.Fatal("room with dead enemies not cleared")
	}
	if !strings.Contains(r.View(80, 24), "Raum gesäubert!") {
		t.Error("view missing cleared banner")
	}

	r.Update(keyPress('n'))
	if r.depth != 2 {
		t.Errorf("depth = %d, want 2", r.depth)
	}
	if len(r.room.LiveEnemies()) == 0 {
		t.Error("next room spawned no enemies")
	}
}

func TestRoamScreen_DeeperRoomsSpawnStronger(t *testing.T) {
	first := buildRoom(1, 1)
	third := buildRoom(3, 1)
	if third.Enemies[0].Level <= first.Enemies[0].Level {
		t.Errorf("depth 3 level %d not above depth 1 level %d",
			third.Enemies[0].Level, first.Enemies[0].Level)
	}
}

func TestRoamScreen_DefeatAndRetry(t *testing.T) {
	r := newTestRoam()
	r.player.SetHP(0)

	// Movement is ignored while defeated.
	x := r.player.X
	r.Update(keyPress('l'))
	if r.player.X != x {
		t.Error("defeated player moved")
	}
	if !strings.Contains(r.View(80, 24), "Besiegt!") {
		t.Error("view missing defeat banner")
	}

	r.Update(keyPress('r'))
	if r.player.HP != world.PlayerMaxHP {
		t.Errorf("HP after retry = %d", r.player.HP)
	}
	if len(r.room.LiveEnemies()) != len(bestiary) {
		t.Error("retry did not respawn the room")
	}
}
