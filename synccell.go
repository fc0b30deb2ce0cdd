package bint

import "sync"

// SyncCell is a Cell safe for mutation from several goroutines.
type SyncCell struct {
	mu   sync.Mutex
	cell *Cell
}

func NewSyncCell(value, boundary uint) (*SyncCell, error) {
	cell, err := NewCell(value, boundary)
	if err != nil {
		return nil, err
	}

	return &SyncCell{cell: cell}, nil
}

func (s *SyncCell) Value() (val uint) {
	s.mu.Lock()
	val = s.cell.Value()
	s.mu.Unlock()
	return
}

func (s *SyncCell) Boundary() (val uint) {
	s.mu.Lock()
	val = s.cell.Boundary()
	s.mu.Unlock()
	return
}

func (s *SyncCell) Up() (val uint) {
	s.mu.Lock()
	val = s.cell.Up()
	s.mu.Unlock()
	return
}

func (s *SyncCell) UpBy(n uint) (val uint) {
	s.mu.Lock()
	val = s.cell.UpBy(n)
	s.mu.Unlock()
	return
}

func (s *SyncCell) Down() (val uint) {
	s.mu.Lock()
	val = s.cell.Down()
	s.mu.Unlock()
	return
}

func (s *SyncCell) DownBy(n uint) (val uint) {
	s.mu.Lock()
	val = s.cell.DownBy(n)
	s.mu.Unlock()
	return
}
