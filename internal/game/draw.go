package game

import (
	"fmt"

	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/core"
)

// Draw renders the current frame. The surface is expected to be cleared
// by the caller.
func (s *Session) Draw(surf core.Surface) {
	for _, p := range s.platforms {
		c := core.ColorPlatform
		if p.Ground {
			c = core.ColorGround
		}
		surf.FillRect(p.Rect(), c)
	}
	for _, p := range s.pickups {
		drawDonut(surf, p)
	}
	for _, e := range s.enemies {
		drawEnemy(surf, e)
	}
	for _, p := range s.projectiles {
		surf.FillCircle(p.X+p.W/2, p.Y+p.H/2, p.W/2, core.ColorProjectile)
	}
	for _, b := range s.bullets {
		surf.FillRect(b.Rect(), core.ColorBullet)
	}
	drawGoal(surf, s.goal)
	drawPlayer(surf, s.player)
	s.drawHUD(surf)
}

func drawDonut(surf core.Surface, p *Pickup) {
	surf.FillCircle(p.X, p.Y, p.Radius, core.ColorDonut)
	surf.FillCircle(p.X, p.Y, p.Radius*0.45, core.ColorBackground)
}

func drawEnemy(surf core.Surface, e *Enemy) {
	if e.Dead {
		return
	}
	c := core.ColorEnemy
	if e.Boss {
		c = core.ColorBoss
	}
	surf.FillRect(e.Rect(), c)
}

// drawGoal draws the unicorn: body, horn and a rainbow tail.
func drawGoal(surf core.Surface, g core.Rect) {
	surf.FillRect(g, core.ColorGoal)
	surf.FillRect(core.NewRect(g.Right()-6, g.Y-8, 4, 8), core.ColorHorn)
	for i, c := range core.Rainbow {
		x := g.X - float64(i+1)*4
		y := g.Y + 4 + float64(i%2)
		surf.FillRect(core.NewRect(x, y, 4, g.H-8), c)
	}
}

func drawPlayer(surf core.Surface, p *Player) {
	c := core.ColorPlayer
	if p.Invuln > 0 && int(p.Invuln*20)%2 == 0 {
		c = core.ColorPlayerFlash
	}
	r := p.Rect()
	surf.FillRect(r, c)

	midY := r.Y + r.H/2
	if p.Facing >= 0 {
		surf.FillRect(core.NewRect(r.Right()+1, midY-4, 5, 8), core.ColorFacing)
	} else {
		surf.FillRect(core.NewRect(r.X-6, midY-4, 5, 8), core.ColorFacing)
	}
}

// HUD layout in world pixels.
const (
	hudPad      = 10
	heartSize   = 16
	heartGap    = 4
	hudLine1    = 34
	hudLine2    = 52
	speedLabelX = 120
	dmgLabelX   = 220
)

func (s *Session) drawHUD(surf core.Surface) {
	w, h := s.bounds.W, s.bounds.H
	p := s.player

	for i := 0; i < p.MaxHearts; i++ {
		c := core.ColorHeartEmpty
		if i < p.Hearts {
			c = core.ColorHeart
		}
		drawHeart(surf, hudPad+float64(i*(heartSize+heartGap)), hudPad, heartSize, c)
	}

	surf.DrawText(fmt.Sprintf("Pts: %d", s.levelScore), hudPad, hudLine1, core.ColorText)
	surf.DrawText(fmt.Sprintf("Enemies: %d", len(s.enemies)), hudPad, hudLine2, core.ColorText)

	mode := "Mode: " + s.difficulty.Label()
	modeColor := core.ColorInfo
	if s.difficulty == config.DifficultyHard {
		modeColor = core.ColorWarn
	}
	surf.DrawText(mode, w-surf.MeasureText(mode)-hudPad, hudPad, modeColor)

	info := fmt.Sprintf("Level %d  Dmg %dhp  Total %d", s.level, s.scaling.DamagePerHit, s.totalScore)
	surf.DrawText(info, (w-surf.MeasureText(info))/2, hudPad, core.ColorText)

	if p.Boost > 0 {
		surf.DrawText("Speed Boost!", speedLabelX, hudLine1, core.ColorInfo)
	}
	if s.damageBoost > 0 {
		surf.DrawText("Damage Boost!", dmgLabelX, hudLine1, core.ColorHorn)
	}

	if s.state == StateRunning {
		return
	}
	surf.FillRect(core.NewRect(0, 0, w, h), core.ColorShade)

	var lines []string
	switch s.state {
	case StateMenu:
		easy, hard := s.cfg.Difficulty.Easy, s.cfg.Difficulty.Hard
		lines = []string{
			"Select Difficulty",
			fmt.Sprintf("1/E = Easy (%d hearts), 2/H = Hard (%d hearts)", easy.MaxHearts, hard.MaxHearts),
		}
	case StatePaused:
		lines = []string{"Paused", "Press Esc to resume, R to reset"}
	case StateWon:
		lines = []string{
			fmt.Sprintf("Level %d Complete!", s.level),
			fmt.Sprintf("Level Pts: %d  Total: %d", s.levelScore, s.totalScore+s.levelScore),
			"Press Enter to advance",
		}
	case StateLost:
		lines = []string{
			"Game Over",
			fmt.Sprintf("Final Score: %d", s.totalScore+s.levelScore),
			"Press Enter to restart",
		}
	}

	y := h/2 - 24
	for i, line := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorPlayerFlash
		}
		surf.DrawText(line, (w-surf.MeasureText(line))/2, y, c)
		if i == 0 {
			y += 32
		} else {
			y += 18
		}
	}
}

// drawHeart approximates a heart with two lobes and a body.
func drawHeart(surf core.Surface, x, y, size float64, c core.Color) {
	r := size * 0.27
	surf.FillCircle(x+size*0.3, y+size*0.38, r, c)
	surf.FillCircle(x+size*0.7, y+size*0.38, r, c)
	surf.FillRect(core.NewRect(x+size*0.2, y+size*0.4, size*0.6, size*0.35), c)
}
