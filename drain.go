package bint

// DrainCell is a Cell with a finite budget of mutating calls. Each
// successful Up/UpBy/Down/DownBy costs exactly one use, whatever its
// magnitude. Once the budget hits zero the cell is exhausted: mutating
// calls report ok == false and leave the value untouched. There is no
// refill.
type DrainCell struct {
	cell      *Cell
	remaining uint
}

// NewDrainCell builds a drain cell with maxUses on its budget.
func NewDrainCell(value, boundary, maxUses uint) (*DrainCell, error) {
	cell, err := NewCell(value, boundary)
	if err != nil {
		return nil, err
	}

	return &DrainCell{
		cell:      cell,
		remaining: maxUses,
	}, nil
}

func (d *DrainCell) Value() uint {
	return d.cell.Value()
}

// Remaining reports how many mutating calls are left on the budget.
func (d *DrainCell) Remaining() uint {
	return d.remaining
}

// Up steps forward and spends one use. ok is false once exhausted.
func (d *DrainCell) Up() (val uint, ok bool) {
	if !d.spend() {
		return 0, false
	}
	return d.cell.Up(), true
}

// UpBy steps forward by n for a single use, whatever n is.
func (d *DrainCell) UpBy(n uint) (val uint, ok bool) {
	if !d.spend() {
		return 0, false
	}
	return d.cell.UpBy(n), true
}

// Down steps backward and spends one use. ok is false once exhausted.
func (d *DrainCell) Down() (val uint, ok bool) {
	if !d.spend() {
		return 0, false
	}
	return d.cell.Down(), true
}

// DownBy steps backward by n for a single use, whatever n is.
func (d *DrainCell) DownBy(n uint) (val uint, ok bool) {
	if !d.spend() {
		return 0, false
	}
	return d.cell.DownBy(n), true
}

func (d *DrainCell) spend() bool {
	if d.remaining == 0 {
		return false
	}
	d.remaining--
	return true
}
