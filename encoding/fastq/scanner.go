package fastq

import (
	"bufio"
	"errors"
	"io"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// LinesPerRead is the number of lines in one FASTQ record.
const LinesPerRead = 4

// A Read is a FASTQ read, comprising an ID, sequence, line 3
// ("unknown"), and a quality string. Each field holds the line's bytes
// without the trailing '\n'; any '\r' is kept so that CRLF input is
// rewritten as-is.
//
// The slices are owned by the Read and are reused by subsequent
// calls to Scanner.Scan or RandomReader.ReadAt.
type Read struct {
	ID, Seq, Unk, Qual []byte
}

func (r *Read) line(i int) *[]byte {
	switch i {
	case 0:
		return &r.ID
	case 1:
		return &r.Seq
	case 2:
		return &r.Unk
	default:
		return &r.Qual
	}
}

func (r *Read) blank() bool {
	return len(r.ID) == 0 && len(r.Seq) == 0 && len(r.Unk) == 0 && len(r.Qual) == 0
}

var errEOF = errors.New("eof")

// Validation selects how much structure Scanner checks.
type Validation int

const (
	// Lenient accepts any four lines as a read. A truncated read at the
	// end of the stream is completed with empty lines, unless all of its
	// lines are empty, in which case it is ignored.
	Lenient Validation = iota
	// Strict requires ID lines to begin with "@" and line 3 to begin
	// with "+", and rejects a truncated final read with ErrShort. It
	// does not perform further validation (e.g., seq/qual being of
	// equal length).
	Strict
)

// Scanner provides a convenient interface for reading FASTQ read
// data. The Scan method returns the next read, returning a boolean
// indicating whether the read succeeded. Scanners are not
// threadsafe.
//
// In addition to the read itself, Scanner reports the byte offset at
// which each read starts, so that the read can later be reloaded
// with a RandomReader.
type Scanner struct {
	b          *bufio.Reader
	err        error
	validation Validation
	// off is the stream offset of the next unconsumed byte.
	off int64
	// start is the offset of the read last returned by Scan.
	start int64
}

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader, which should be positioned at offset 0.
func NewScanner(r io.Reader, v Validation) *Scanner {
	return &Scanner{b: bufio.NewReaderSize(r, 1<<16), validation: v}
}

// reset repositions the scanner onto r, whose next byte is at offset
// off. The read buffer is retained.
func (f *Scanner) reset(r io.Reader, off int64) {
	f.b.Reset(r)
	f.off = off
	f.err = nil
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	start := f.off
	eof := false
	for i := 0; i < LinesPerRead; i++ {
		p := read.line(i)
		if eof {
			if f.validation == Strict {
				f.err = ErrShort
				return false
			}
			*p = (*p)[:0]
			continue
		}
		var err error
		var terminated bool
		*p, terminated, err = f.readLine(*p)
		if err != nil {
			f.err = pkgerrors.Wrapf(err, "read FASTQ line at offset %d", f.off)
			return false
		}
		if !terminated {
			eof = true
			if len(*p) == 0 {
				if i == 0 {
					f.err = errEOF
					return false
				}
				if f.validation == Strict {
					f.err = ErrShort
					return false
				}
			}
		}
		if f.validation == Strict {
			if i == 0 && (len(*p) == 0 || (*p)[0] != '@') {
				f.err = ErrInvalid
				return false
			}
			if i == 2 && (len(*p) == 0 || (*p)[0] != '+') {
				f.err = ErrInvalid
				return false
			}
		}
	}
	if eof && read.blank() {
		// Trailing blank lines.
		f.err = errEOF
		return false
	}
	f.start = start
	return true
}

// readLine reads the next line into dst without its '\n'. terminated
// is false if the stream ended before a '\n' was seen.
func (f *Scanner) readLine(dst []byte) (line []byte, terminated bool, err error) {
	dst = dst[:0]
	for {
		frag, err := f.b.ReadSlice('\n')
		f.off += int64(len(frag))
		switch err {
		case nil:
			return append(dst, frag[:len(frag)-1]...), true, nil
		case bufio.ErrBufferFull:
			dst = append(dst, frag...)
		case io.EOF:
			return append(dst, frag...), false, nil
		default:
			return dst, false, err
		}
	}
}

// Offset returns the byte offset of the ID line of the read last
// returned by Scan.
func (f *Scanner) Offset() int64 {
	return f.start
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}
