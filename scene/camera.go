package scene

import (
	"fmt"

	"github.com/achilleasa/whitted/types"
)

// The camera shoots rays from a fixed eye position through a screen
// rectangle lying on the z = 0 plane. The rectangle spans [-1, 1] on X and
// is aspect-corrected and shifted up by YOffset on Y.
type Camera struct {
	Eye     types.Vec3
	YOffset float64
}

func NewCamera(eye types.Vec3) *Camera {
	return &Camera{
		Eye:     eye,
		YOffset: 0.25,
	}
}

// Get the screen rectangle (x0, y0, x1, y1) for the given frame dimensions.
// (x0, y0) maps to the top-left pixel.
func (c *Camera) Screen(frameW, frameH int) [4]float64 {
	r := float64(frameW) / float64(frameH)
	return [4]float64{-1, 1/r + c.YOffset, 1, -1/r + c.YOffset}
}

// Generate the primary rays for a block of rows. Rays are laid out in
// row-major order starting with row rowStart; all rays share the eye as
// their origin.
func (c *Camera) PrimaryRays(frameW, frameH, rowStart, rows int) (origin, dir types.Vec3Batch, err error) {
	if frameW <= 0 || frameH <= 0 {
		return origin, dir, fmt.Errorf("scene: invalid frame dimensions %dx%d", frameW, frameH)
	}
	if rowStart < 0 || rows <= 0 || rowStart+rows > frameH {
		return origin, dir, fmt.Errorf("scene: row block [%d, %d) outside frame height %d", rowStart, rowStart+rows, frameH)
	}

	screen := c.Screen(frameW, frameH)
	n := frameW * rows
	q := types.NewVec3Batch(n)
	for row := 0; row < rows; row++ {
		y := linspace(screen[1], screen[3], frameH, rowStart+row)
		for col := 0; col < frameW; col++ {
			lane := row*frameW + col
			q.X[lane] = linspace(screen[0], screen[2], frameW, col)
			q.Y[lane] = y
		}
	}

	return types.Broadcast(n, c.Eye), q.SubVec(c.Eye).Normalize(), nil
}

// Return the i-th of n evenly spaced samples over [start, stop]. Both ends
// are included.
func linspace(start, stop float64, n, i int) float64 {
	if n == 1 || i == 0 {
		return start
	}
	if i == n-1 {
		return stop
	}
	return start + float64(i)*(stop-start)/float64(n-1)
}
