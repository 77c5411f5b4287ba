package rider

import (
	"fmt"
	"math"

	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"go.uber.org/zap"
)

// Config describes the torso and the optional arm.
type Config struct {
	TorsoHalfWidth  float64 `yaml:"torso_half_width"`
	TorsoHalfHeight float64 `yaml:"torso_half_height"`
	TorsoDensity    float64 `yaml:"torso_density"`
	TorsoFriction   float64 `yaml:"torso_friction"`

	Limb LimbConfig `yaml:"limb"`
}

// LimbConfig describes a passive arm hanging off the torso's shoulder.
type LimbConfig struct {
	Enabled    bool    `yaml:"enabled"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfLength float64 `yaml:"half_length"`
	Density    float64 `yaml:"density"`
	// ShoulderDrop is measured from the torso's top edge downward.
	ShoulderDrop float64 `yaml:"shoulder_drop"`
	// SwingDegrees bounds the joint symmetrically to ±SwingDegrees.
	SwingDegrees float64 `yaml:"swing_degrees"`
}

// DefaultConfig returns a torso with a right arm limited to ±45°.
func DefaultConfig() Config {
	return Config{
		TorsoHalfWidth:  0.4,
		TorsoHalfHeight: 1.2,
		TorsoDensity:    1.0,
		TorsoFriction:   0.3,
		Limb: LimbConfig{
			Enabled:      true,
			HalfWidth:    0.1,
			HalfLength:   0.5,
			Density:      0.5,
			ShoulderDrop: 0.4,
			SwingDegrees: 45,
		},
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.TorsoHalfWidth <= 0 || c.TorsoHalfHeight <= 0 {
		return fmt.Errorf("torso extents: %w", ErrInvalidConfig)
	}
	if !c.Limb.Enabled {
		return nil
	}
	if c.Limb.HalfWidth <= 0 || c.Limb.HalfLength <= 0 {
		return fmt.Errorf("limb extents: %w", ErrInvalidConfig)
	}
	if c.Limb.SwingDegrees < 0 || c.Limb.SwingDegrees > 180 {
		return fmt.Errorf("limb swing %.1f°: %w", c.Limb.SwingDegrees, ErrInvalidConfig)
	}
	return nil
}

// Rider is a torso pinned to the vehicle frame. It has no controls: it only
// moves because the pin transmits the frame's motion.
type Rider struct {
	cfg   Config
	group int16

	torso *physics.Body
	pin   *physics.Joint

	limb     *physics.Body
	shoulder *physics.Joint
}

// New stands a torso on top of frame. standOn is the frame-local anchor the
// torso's bottom edge is pinned to; the torso is created directly above it so
// the pin starts satisfied.
func New(w *physics.World, frame *physics.Body, standOn physics.Vec2, cfg Config, log *zap.Logger) (*Rider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, fmt.Errorf("attach rider: %w", physics.ErrNilBody)
	}
	if log == nil {
		log = zap.NewNop()
	}

	fp := frame.Pose()
	pos := physics.Vec2{X: fp.X + standOn.X, Y: fp.Y + standOn.Y + cfg.TorsoHalfHeight}

	// the rider joins the frame's collision group so it never rubs the wheels
	r := &Rider{cfg: cfg, group: frame.Group()}
	var err error
	r.torso, err = w.CreateBox(physics.Dynamic, pos, cfg.TorsoHalfWidth, cfg.TorsoHalfHeight, physics.Fixture{
		Density:  cfg.TorsoDensity,
		Friction: cfg.TorsoFriction,
		Group:    r.group,
	})
	if err != nil {
		return nil, fmt.Errorf("create torso: %w", err)
	}

	r.pin, err = w.CreateRevolute(physics.Revolute{
		BodyA:   frame,
		BodyB:   r.torso,
		AnchorA: standOn,
		AnchorB: physics.Vec2{Y: -cfg.TorsoHalfHeight},
	})
	if err != nil {
		return nil, fmt.Errorf("pin torso: %w", err)
	}

	if cfg.Limb.Enabled {
		if err := r.attachLimb(w, pos); err != nil {
			return nil, err
		}
	}

	log.Named("rider").Debug("rider mounted",
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Bool("limb", r.limb != nil),
	)
	return r, nil
}

func (r *Rider) attachLimb(w *physics.World, torsoPos physics.Vec2) error {
	lc := r.cfg.Limb
	shoulder := physics.Vec2{X: r.cfg.TorsoHalfWidth, Y: r.cfg.TorsoHalfHeight - lc.ShoulderDrop}
	pos := torsoPos.Add(shoulder).Add(physics.Vec2{Y: lc.HalfLength})

	var err error
	r.limb, err = w.CreateBox(physics.Dynamic, pos, lc.HalfWidth, lc.HalfLength, physics.Fixture{Density: lc.Density, Group: r.group})
	if err != nil {
		return fmt.Errorf("create limb: %w", err)
	}

	swing := lc.SwingDegrees * math.Pi / 180
	r.shoulder, err = w.CreateRevolute(physics.Revolute{
		BodyA:   r.torso,
		BodyB:   r.limb,
		AnchorA: shoulder,
		AnchorB: physics.Vec2{Y: -lc.HalfLength},
		Limit:   &physics.Limit{Lower: -swing, Upper: swing},
	})
	if err != nil {
		return fmt.Errorf("attach limb: %w", err)
	}
	return nil
}

// Config returns the configuration the rider was built with.
func (r *Rider) Config() Config {
	return r.cfg
}

// TorsoPose returns the torso's current pose.
func (r *Rider) TorsoPose() physics.Pose {
	return r.torso.Pose()
}

// LimbPose returns the limb's pose and whether the rider has one.
func (r *Rider) LimbPose() (physics.Pose, bool) {
	if r.limb == nil {
		return physics.Pose{}, false
	}
	return r.limb.Pose(), true
}

// Pin returns the torso-to-frame joint.
func (r *Rider) Pin() *physics.Joint {
	return r.pin
}

// Shoulder returns the limb joint, nil without a limb.
func (r *Rider) Shoulder() *physics.Joint {
	return r.shoulder
}

// Bodies returns the rider's bodies, torso first.
func (r *Rider) Bodies() []*physics.Body {
	if r.limb == nil {
		return []*physics.Body{r.torso}
	}
	return []*physics.Body{r.torso, r.limb}
}

// Translate shifts every rider body by d.
func (r *Rider) Translate(d physics.Vec2) {
	for _, b := range r.Bodies() {
		b.Translate(d)
	}
}
