//go:build !linux

package shm

import "runtime"

func Acquire(key, size int) (*Segment, error) {
	return nil, segmentErrorf("SysV shared memory is not supported on %s", runtime.GOOS)
}

func Write(seg *Segment, data []byte) error {
	return segmentErrorf("SysV shared memory is not supported on %s", runtime.GOOS)
}

func Release(seg *Segment) {
	if seg == nil {
		return
	}
	seg.mu.Lock()
	seg.released = true
	seg.mu.Unlock()
}

func Exists(key int) bool {
	return false
}

func Read(id, offset, size int) ([]byte, error) {
	return nil, segmentErrorf("SysV shared memory is not supported on %s", runtime.GOOS)
}
