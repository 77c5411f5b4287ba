package collision

import (
	"github.com/golangdaddy/ragdollrider/pkg/obstacle"
	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"github.com/golangdaddy/ragdollrider/pkg/vehicle"
)

// Part names a vehicle reference shape.
type Part string

const (
	PartFrame      Part = "frame"
	PartFrontWheel Part = "front_wheel"
	PartRearWheel  Part = "rear_wheel"
)

// Reference is a vehicle part with its current box.
type Reference struct {
	Part Part
	Box  Box
}

// Hit records the first overlapping obstacle/part pair.
type Hit struct {
	Obstacle int
	Part     Part
}

// Vehicle is the part of a vehicle the evaluator reads. *vehicle.Segway
// satisfies it.
type Vehicle interface {
	FramePose() physics.Pose
	FrontWheelPose() physics.Pose
	RearWheelPose() physics.Pose
	Config() vehicle.Config
}

// Hazards lists the live obstacles. *obstacle.Manager satisfies it.
type Hazards interface {
	Obstacles() []*obstacle.Obstacle
}

// Evaluator decides whether the vehicle touches any obstacle this frame.
type Evaluator struct {
	vehicle Vehicle
	hazards Hazards
}

// NewEvaluator wires an evaluator to live state. It holds no state of its own.
func NewEvaluator(v Vehicle, h Hazards) *Evaluator {
	return &Evaluator{vehicle: v, hazards: h}
}

// References returns the frame box and the two wheel squares. Boxes ignore
// rotation: the frame uses its fixed half extents whatever its angle.
func (e *Evaluator) References() []Reference {
	cfg := e.vehicle.Config()
	return []Reference{
		{PartFrame, FromCenter(e.vehicle.FramePose().Position(), cfg.FrameHalfWidth, cfg.FrameHalfHeight)},
		{PartFrontWheel, Square(e.vehicle.FrontWheelPose().Position(), cfg.WheelRadius)},
		{PartRearWheel, Square(e.vehicle.RearWheelPose().Position(), cfg.WheelRadius)},
	}
}

// ObstacleBox returns an obstacle's axis-aligned box.
func ObstacleBox(o *obstacle.Obstacle) Box {
	return Square(o.Pose().Position(), o.HalfExtent)
}

// Evaluate reports whether any obstacle overlaps any reference shape.
func (e *Evaluator) Evaluate() bool {
	_, hit := e.FirstHit()
	return hit
}

// FirstHit returns the first overlapping pair in obstacle order.
func (e *Evaluator) FirstHit() (Hit, bool) {
	obstacles := e.hazards.Obstacles()
	boxes := make([]Box, len(obstacles))
	for i, o := range obstacles {
		boxes[i] = ObstacleBox(o)
	}
	hit, ok := FirstHit(e.References(), boxes)
	if ok {
		hit.Obstacle = obstacles[hit.Obstacle].ID
	}
	return hit, ok
}

// FirstHit tests every hazard against every reference. Hit.Obstacle is the
// index into hazards.
func FirstHit(refs []Reference, hazards []Box) (Hit, bool) {
	for i, h := range hazards {
		for _, r := range refs {
			if h.Overlaps(r.Box) {
				return Hit{Obstacle: i, Part: r.Part}, true
			}
		}
	}
	return Hit{}, false
}
