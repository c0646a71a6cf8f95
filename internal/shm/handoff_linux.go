//go:build linux

package shm

import (
	"errors"
	"log/slog"

	"golang.org/x/sys/unix"
)

// Acquire opens the segment at key, or creates one of exactly size bytes if
// none exists. An existing segment of a different size is an error.
func Acquire(key, size int) (*Segment, error) {
	if size <= 0 {
		return nil, segmentErrorf("invalid segment size %d", size)
	}

	id, err := unix.SysvShmGet(key, 0, 0)
	switch {
	case err == nil:
		var desc unix.SysvShmDesc
		if _, err := unix.SysvShmCtl(id, unix.IPC_STAT, &desc); err != nil {
			return nil, segmentErrorf("stat segment key=%d: %v", key, err)
		}
		if int(desc.Segsz) != size {
			return nil, segmentErrorf("segment key=%d has size %d, requested %d", key, desc.Segsz, size)
		}
		slog.Debug("opened existing shared memory segment", "key", key, "id", id, "size", size)

	case errors.Is(err, unix.ENOENT):
		id, err = unix.SysvShmGet(key, size, unix.IPC_CREAT|unix.IPC_EXCL|permReadWrite)
		if err != nil {
			return nil, segmentErrorf("create segment key=%d size=%d: %v", key, size, err)
		}
		slog.Debug("created shared memory segment", "key", key, "id", id, "size", size)

	default:
		return nil, segmentErrorf("open segment key=%d: %v", key, err)
	}

	return &Segment{key: key, id: id, size: size, mode: ReadWrite}, nil
}

// Write copies data into the segment and flips it to read-only. The segment is
// detached first if needed and stays attached until Release.
func Write(seg *Segment, data []byte) error {
	seg.mu.Lock()
	defer seg.mu.Unlock()

	if seg.released {
		return segmentErrorf("segment key=%d already released", seg.key)
	}
	if len(data) != seg.size {
		return segmentErrorf("payload of %d bytes does not fill segment of %d bytes", len(data), seg.size)
	}

	if seg.data != nil {
		if err := unix.SysvShmDetach(seg.data); err != nil {
			return segmentErrorf("detach segment id=%d: %v", seg.id, err)
		}
		seg.data = nil
	}

	if err := setPerm(seg.id, ReadWrite); err != nil {
		return err
	}
	seg.mode = ReadWrite

	mem, err := unix.SysvShmAttach(seg.id, 0, 0)
	if err != nil {
		return segmentErrorf("attach segment id=%d: %v", seg.id, err)
	}
	seg.data = mem

	copy(seg.data, data)

	if err := setPerm(seg.id, ReadOnly); err != nil {
		return err
	}
	seg.mode = ReadOnly

	return nil
}

// Release detaches and removes the segment. It is safe to call more than once
// and never fails; problems are logged.
func Release(seg *Segment) {
	if seg == nil {
		return
	}

	seg.mu.Lock()
	defer seg.mu.Unlock()

	if seg.released {
		return
	}
	seg.released = true

	if seg.data != nil {
		if err := unix.SysvShmDetach(seg.data); err != nil {
			slog.Error("error detaching shared memory segment", "key", seg.key, "id", seg.id, "error", err)
		}
		seg.data = nil
	}

	if _, err := unix.SysvShmCtl(seg.id, unix.IPC_RMID, nil); err != nil && !errors.Is(err, unix.EINVAL) && !errors.Is(err, unix.EIDRM) {
		slog.Error("error removing shared memory segment", "key", seg.key, "id", seg.id, "error", err)
	}
}

// Exists reports whether a segment is currently registered under key.
func Exists(key int) bool {
	_, err := unix.SysvShmGet(key, 0, 0)
	return err == nil
}

// Read attaches read-only to the segment with the given id and copies size
// bytes starting at offset. This is the consumer side of the handoff.
func Read(id, offset, size int) ([]byte, error) {
	mem, err := unix.SysvShmAttach(id, 0, unix.SHM_RDONLY)
	if err != nil {
		return nil, segmentErrorf("attach segment id=%d read-only: %v", id, err)
	}
	defer unix.SysvShmDetach(mem) //nolint:errcheck

	if offset < 0 || size < 0 || offset+size > len(mem) {
		return nil, segmentErrorf("range [%d,%d) outside segment of %d bytes", offset, offset+size, len(mem))
	}

	out := make([]byte, size)
	copy(out, mem[offset:offset+size])
	return out, nil
}

func setPerm(id int, mode Mode) error {
	var desc unix.SysvShmDesc
	if _, err := unix.SysvShmCtl(id, unix.IPC_STAT, &desc); err != nil {
		return segmentErrorf("stat segment id=%d: %v", id, err)
	}
	// Perm.Mode is uint16 or uint32 depending on GOARCH.
	if mode == ReadOnly {
		desc.Perm.Mode = permReadOnly
	} else {
		desc.Perm.Mode = permReadWrite
	}
	if _, err := unix.SysvShmCtl(id, unix.IPC_SET, &desc); err != nil {
		return segmentErrorf("set %s mode on segment id=%d: %v", mode, id, err)
	}
	return nil
}
