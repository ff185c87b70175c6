package scene

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/whitted/types"
	"github.com/olekukonko/tablewriter"
)

var (
	ErrDuplicatePrimitive = errors.New("scene: primitive already added")
	ErrNilPrimitive       = errors.New("scene: nil primitive")
)

type Scene struct {
	Camera *Camera

	// Point light position.
	Light types.Vec3

	// Constant ambient term added to every shaded point.
	Ambient types.Vec3

	// Primitives are identified by their index in this list.
	Primitives []Primitive
}

func NewScene() *Scene {
	return &Scene{
		Primitives: make([]Primitive, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a primitive to the scene and return its id.
func (s *Scene) AddPrimitive(primitive Primitive) (int, error) {
	if primitive == nil {
		return -1, ErrNilPrimitive
	}
	for _, prim := range s.Primitives {
		if prim == primitive {
			return -1, ErrDuplicatePrimitive
		}
	}
	s.Primitives = append(s.Primitives, primitive)
	return len(s.Primitives) - 1, nil
}

// Intersect the rays with every primitive. The returned slice is indexed by
// primitive id.
func (s *Scene) Distances(origin, dir types.Vec3Batch) []types.Scalars {
	distances := make([]types.Scalars, len(s.Primitives))
	for id, prim := range s.Primitives {
		distances[id] = prim.Intersect(origin, dir)
	}
	return distances
}

// Lane-wise minimum across a set of distance batches.
func Nearest(distances []types.Scalars) types.Scalars {
	if len(distances) == 0 {
		return nil
	}
	nearest := distances[0]
	for _, d := range distances[1:] {
		nearest = types.MinScalars(nearest, d)
	}
	return nearest
}

// Rotate all primitives by angle radians about the Y axis.
func (s *Scene) Rotate(angle float64) {
	for _, prim := range s.Primitives {
		prim.Rotate(angle)
	}
}

// Return a printable summary of the scene contents.
func (s *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Id", "Type", "Geometry", "Mirror"})
	for id, prim := range s.Primitives {
		table.Append([]string{
			fmt.Sprintf("%d", id),
			prim.Type().String(),
			fmt.Sprintf("%v", prim),
			fmt.Sprintf("%.2f", prim.Mirror()),
		})
	}
	table.SetFooter([]string{"", "", "Light", fmtVec(s.Light)})
	table.Render()
	return buf.String()
}
