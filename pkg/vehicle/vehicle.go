package vehicle

// Controls is the command surface of a drivable vehicle. Every call only
// changes joint targets or applies an impulse; the motion itself happens on
// the next world step.
type Controls interface {
	MoveRight()
	MoveLeft()
	Stop()
	Jump()
}
