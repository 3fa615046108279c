package fastq

import (
	"io"

	"github.com/pkg/errors"
)

// RandomReader reloads reads from a seekable FASTQ stream given the
// offsets reported by Scanner.Offset. Reads at consecutive offsets are
// served from the same buffer without seeking.
type RandomReader struct {
	r io.ReadSeeker
	s *Scanner
	// pos is the stream offset the scanner buffer continues from, or
	// -1 if the underlying stream position is unknown.
	pos int64
}

// NewRandomReader creates a RandomReader on r. The stream position of
// r is not assumed; the first ReadAt always seeks.
func NewRandomReader(r io.ReadSeeker, v Validation) *RandomReader {
	return &RandomReader{r: r, s: NewScanner(r, v), pos: -1}
}

// ReadAt reads the read whose ID line starts at byte offset off.
func (r *RandomReader) ReadAt(off int64, read *Read) error {
	if off != r.pos {
		if newOff, err := r.r.Seek(off, io.SeekStart); err != nil || newOff != off {
			r.pos = -1
			if err == nil {
				err = errors.Errorf("landed at offset %d", newOff)
			}
			return errors.Wrapf(err, "seek to FASTQ offset %d", off)
		}
		r.s.reset(r.r, off)
	}
	if !r.s.Scan(read) {
		r.pos = -1
		if err := r.s.Err(); err != nil {
			return err
		}
		return errors.Errorf("no FASTQ read at offset %d", off)
	}
	r.pos = r.s.off
	return nil
}
