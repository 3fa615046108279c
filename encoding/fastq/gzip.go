package fastq

import (
	"io"

	"github.com/pkg/errors"
)

// gzipMagic is the two-byte prefix of every gzip member.
var gzipMagic = [2]byte{0x1f, 0x8b}

// IsGzipped reports whether the stream r starts with the gzip magic
// bytes. It consumes up to two bytes of r. A stream shorter than two
// bytes is not gzipped.
func IsGzipped(r io.Reader) (bool, error) {
	var buf [2]byte
	n, err := io.ReadFull(r, buf[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "read magic bytes")
	}
	return n == len(buf) && buf == gzipMagic, nil
}
