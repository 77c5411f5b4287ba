package physics

import "errors"

// Construction errors. They are fatal at startup: a world that fails to build
// is never stepped.
var (
	ErrNilBody       = errors.New("joint references a nil body")
	ErrForeignBody   = errors.New("body belongs to a different world")
	ErrSameBody      = errors.New("joint connects a body to itself")
	ErrStaticBody    = errors.New("static bodies do not accept velocity commands")
	ErrInvalidLimit  = errors.New("joint limit lower bound exceeds upper bound")
	ErrInvalidShape  = errors.New("shape dimensions must be positive")
	ErrWorldLocked   = errors.New("world is locked while stepping")
	ErrJointCreation = errors.New("solver rejected joint definition")
)
