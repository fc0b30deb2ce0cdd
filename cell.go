package bint

// Cell wraps a Bint behind in-place mutation. A cell is owned by a
// single caller; use SyncCell when several goroutines share one.
type Cell struct {
	val Bint
}

// NewCell builds a cell around value. The boundary is always explicit;
// there is no default.
func NewCell(value, boundary uint) (*Cell, error) {
	val, err := New(value, boundary)
	if err != nil {
		return nil, err
	}

	return &Cell{val: val}, nil
}

func (c *Cell) Value() uint {
	return c.val.Value()
}

func (c *Cell) Boundary() uint {
	return c.val.Boundary()
}

// Up steps the cell forward and returns the new value.
func (c *Cell) Up() uint {
	c.val = c.val.Up()
	return c.val.Value()
}

// UpBy steps the cell forward by n and returns the new value.
func (c *Cell) UpBy(n uint) uint {
	c.val = c.val.UpBy(n)
	return c.val.Value()
}

// Down steps the cell backward and returns the new value.
func (c *Cell) Down() uint {
	c.val = c.val.Down()
	return c.val.Value()
}

// DownBy steps the cell backward by n and returns the new value.
func (c *Cell) DownBy(n uint) uint {
	c.val = c.val.DownBy(n)
	return c.val.Value()
}
