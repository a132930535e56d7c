package core

// Color represents a foreground color for a screen cell.
// The platform maps these onto ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlayer        // player glyph and health readout
	ColorEnemy         // pursuers and the RUN! prompt
	ColorHealth        // health pickups
	ColorPowerUp       // power-ups, kill-mode timer, player while in kill mode
	ColorScore         // score readout
	ColorText          // menu and overlay text
	ColorGround        // ground texture
	ColorDim           // secondary hints
)
