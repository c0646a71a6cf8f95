package shm

import (
	"errors"
	"fmt"
	"sync"
)

var ErrSegment = errors.New("shared memory segment error")

type Mode int

const (
	ReadWrite Mode = iota
	ReadOnly
)

func (m Mode) String() string {
	if m == ReadOnly {
		return "read-only"
	}
	return "read-write"
}

const (
	// Permission bits applied to the segment while the producer writes and
	// once the payload is handed to the agent.
	permReadWrite = 0o606
	permReadOnly  = 0o404
)

// Segment is one SysV shared memory region. A segment has a single producer
// (this process) and a single consumer (the agent) per prediction.
type Segment struct {
	mu       sync.Mutex
	key      int
	id       int
	size     int
	mode     Mode
	data     []byte
	released bool
}

func (s *Segment) Key() int  { return s.key }
func (s *Segment) ID() int   { return s.id }
func (s *Segment) Size() int { return s.size }

func (s *Segment) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Segment) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data != nil
}

func (s *Segment) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

func segmentErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSegment, fmt.Sprintf(format, args...))
}
