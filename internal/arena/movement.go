package arena

import "github.com/vovakirdan/tui-arena/internal/core"

// Movement turns held controls into player velocity.
type Movement struct {
	TurnRate float64
}

// Apply runs once per frame while Playing. Thrust accumulates per frame up
// to the speed cap; releasing forward drops thrust and the player glides.
func (m Movement) Apply(ctx *Context, in core.InputFrame) {
	if ctx.State.Current() != StatePlaying {
		return
	}
	p := ctx.PlayerEntity()

	if in.Has(core.ActionForward) {
		ctx.Stats.AddForwardSpeed(ctx.Stats.SpeedPerFrame)
		p.Vel = ctx.Stats.ForwardSpeed.Rotate(p.Heading)
	} else {
		// Existing velocity is left to damping.
		ctx.Stats.StopForward()
	}

	left, right := in.Has(core.ActionTurnLeft), in.Has(core.ActionTurnRight)
	switch {
	case left && !right:
		p.AngVel = -m.TurnRate
	case right && !left:
		p.AngVel = m.TurnRate
	default:
		p.AngVel = 0
	}
}
