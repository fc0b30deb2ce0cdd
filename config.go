package bint

type Config struct {
	Value    uint
	Boundary uint
	MaxUses  uint
}

// FromConfig builds a DrainCell from conf, validating the boundary
// the same way NewDrainCell does.
func FromConfig(conf *Config) (*DrainCell, error) {
	return NewDrainCell(conf.Value, conf.Boundary, conf.MaxUses)
}
