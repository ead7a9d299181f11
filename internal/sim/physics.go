package sim

import (
	"github.com/vovakirdan/brickcore/internal/fixed"
	"github.com/vovakirdan/brickcore/internal/world"
)

// inputVelocity maps the discrete direction to a paddle velocity constant.
func inputVelocity(in Input, speed fixed.Fixed) fixed.Fixed {
	switch in {
	case InputLeft:
		return -speed
	case InputRight:
		return speed
	default:
		return 0
	}
}

// integrate advances paddle and ball positions one tick. Pure position
// advancement; collision resolution happens afterwards.
func integrate(w *world.World, in Input) {
	w.Paddle.VX = inputVelocity(in, w.Config.PaddleSpeed)

	maxX := fixed.FromInt(w.Config.FieldWidth - w.Paddle.Width)
	w.Paddle.X = fixed.Clamp(w.Paddle.X.Add(w.Paddle.VX), 0, maxX)

	w.Ball.X = w.Ball.X.Add(w.Ball.VX)
	w.Ball.Y = w.Ball.Y.Add(w.Ball.VY)
}

// serve places the ball on the paddle center and launches it upward
// with the configured speed and a slight horizontal bias.
func serve(w *world.World) {
	speed := w.Config.BallSpeed
	w.Ball.X = w.Paddle.CenterX()
	w.Ball.Y = fixed.FromInt(w.Config.PaddleY() - 1)
	w.Ball.VX = speed / 4
	w.Ball.VY = -speed
}
