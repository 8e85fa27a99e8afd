package core

import (
	"fmt"
	"image/color"
)

// Color is a palette index shared by every drawing surface.
// Terminal surfaces render it as a foreground color; pixel surfaces use RGBA.
type Color uint8

// Palette entries for game elements.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorGround
	ColorPlatform
	ColorPlayer
	ColorPlayerFlash
	ColorFacing
	ColorDonut
	ColorEnemy
	ColorBoss
	ColorProjectile
	ColorBullet
	ColorGoal
	ColorHorn
	ColorHeart
	ColorHeartEmpty
	ColorText
	ColorInfo
	ColorWarn
	ColorShade
	ColorRainbowRed
	ColorRainbowYellow
	ColorRainbowGreen
	ColorRainbowBlue
	ColorRainbowPurple
)

var palette = map[Color]color.RGBA{
	ColorDefault:       {0xdd, 0xdd, 0xdd, 0xff},
	ColorBackground:    {0x1e, 0x1e, 0x1e, 0xff},
	ColorGround:        {0x60, 0x60, 0x60, 0xff},
	ColorPlatform:      {0x70, 0x70, 0x70, 0xff},
	ColorPlayer:        {0x4e, 0xa3, 0xff, 0xff},
	ColorPlayerFlash:   {0xff, 0xff, 0xff, 0xff},
	ColorFacing:        {0xaa, 0xff, 0x66, 0xff},
	ColorDonut:         {0xff, 0x77, 0xb7, 0xff},
	ColorEnemy:         {0xff, 0x52, 0x52, 0xff},
	ColorBoss:          {0xb8, 0x55, 0xff, 0xff},
	ColorProjectile:    {0xff, 0x98, 0x00, 0xff},
	ColorBullet:        {0xaa, 0xff, 0x66, 0xff},
	ColorGoal:          {0xff, 0xff, 0xff, 0xff},
	ColorHorn:          {0xff, 0xd1, 0x66, 0xff},
	ColorHeart:         {0xff, 0x4d, 0x6d, 0xff},
	ColorHeartEmpty:    {0x55, 0x33, 0x3b, 0xff},
	ColorText:          {0xdd, 0xdd, 0xdd, 0xff},
	ColorInfo:          {0xaa, 0xf0, 0xff, 0xff},
	ColorWarn:          {0xff, 0x78, 0x78, 0xff},
	ColorShade:         {0x00, 0x00, 0x00, 0x80},
	ColorRainbowRed:    {0xff, 0x59, 0x5e, 0xff},
	ColorRainbowYellow: {0xff, 0xca, 0x3a, 0xff},
	ColorRainbowGreen:  {0x8a, 0xc9, 0x26, 0xff},
	ColorRainbowBlue:   {0x19, 0x82, 0xc4, 0xff},
	ColorRainbowPurple: {0x6a, 0x4c, 0x93, 0xff},
}

// Rainbow lists the goal's tail colors in drawing order.
var Rainbow = []Color{
	ColorRainbowRed,
	ColorRainbowYellow,
	ColorRainbowGreen,
	ColorRainbowBlue,
	ColorRainbowPurple,
}

// RGBA returns the pixel color for this palette entry.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
