// Package kinematics holds the position/velocity components and the Euler
// integration step shared by the demo and profiling programs.
package kinematics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/edwinsyarief/reks"
)

// Pos is the position of an entity.
type Pos struct {
	Pos mgl32.Vec3
}

// Vel is the velocity of an entity, in units per second.
type Vel struct {
	Vel mgl32.Vec3
}

func (p Pos) String() string {
	return fmt.Sprintf("Pos(%g, %g, %g)", p.Pos[0], p.Pos[1], p.Pos[2])
}

func (v Vel) String() string {
	return fmt.Sprintf("Vel(%g, %g, %g)", v.Vel[0], v.Vel[1], v.Vel[2])
}

// DeltaTime is the World resource holding the length of one step.
type DeltaTime struct {
	Seconds float64
}

var errNoDeltaTime = errors.New("kinematics: world has no DeltaTime resource")

// Integrate advances pos by vel over dt seconds (explicit Euler).
func Integrate(pos *mgl32.Vec3, vel mgl32.Vec3, dt float64) {
	*pos = pos.Add(vel.Mul(float32(dt)))
}

// CreateWorld returns a World holding the two reference entities:
// {Pos(0,0,0), Vel(1,0,0)} and {Pos(1,0,0), Vel(1,0,1)}.
func CreateWorld(opts ...reks.Option) *reks.World {
	w := reks.NewWorld(opts...)
	w.CreateEntity().
		With(Pos{Pos: mgl32.Vec3{0, 0, 0}}).
		With(Vel{Vel: mgl32.Vec3{1, 0, 0}}).
		Build()
	w.CreateEntity().
		With(Pos{Pos: mgl32.Vec3{1, 0, 0}}).
		With(Vel{Vel: mgl32.Vec3{1, 0, 1}}).
		Build()
	return w
}

// Populate adds n moving entities. Entity i starts at (i,0,0) with velocity
// (1,0,i%3).
func Populate(w *reks.World, n int) {
	for i := range n {
		b := w.CreateEntity()
		reks.WithComponent(b, Pos{Pos: mgl32.Vec3{float32(i), 0, 0}})
		reks.WithComponent(b, Vel{Vel: mgl32.Vec3{1, 0, float32(i % 3)}})
		b.Build()
	}
}

// SetDeltaTime stores or updates the DeltaTime resource of w.
func SetDeltaTime(w *reks.World, seconds float64) {
	if dt, _ := reks.GetResource[DeltaTime](w.Resources()); dt != nil {
		dt.Seconds = seconds
		return
	}
	reks.AddResource(w.Resources(), &DeltaTime{Seconds: seconds})
}

// Step integrates every entity that has both Pos and Vel by the World's
// DeltaTime.
func Step(w *reks.World) error {
	dt, _ := reks.GetResource[DeltaTime](w.Resources())
	if dt == nil {
		return errNoDeltaTime
	}
	seconds := dt.Seconds
	return reks.Execute2(w, func(p reks.Mut[Pos], v reks.Ref[Vel]) {
		Integrate(&p.Get().Pos, v.Get().Vel, seconds)
	})
}
