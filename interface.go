package bint

// Stepper is the mutating-cell contract shared by Cell and SyncCell.
type Stepper interface {
	// Step forward, return the new value
	Up() uint
	// Step forward by n, return the new value
	UpBy(n uint) uint
	// Step backward, return the new value
	Down() uint
	// Step backward by n, return the new value
	DownBy(n uint) uint
	Value() uint
	Boundary() uint
}

var (
	_ Stepper = (*Cell)(nil)
	_ Stepper = (*SyncCell)(nil)
)
