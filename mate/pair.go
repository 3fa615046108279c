package mate

import (
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/fastqpair/encoding/fastq"
)

// Outputs are the four destinations of a pairing run.
type Outputs struct {
	// LeftPaired receives left reads whose mate is in the right file.
	LeftPaired io.Writer
	// LeftSingle receives left reads without a mate.
	LeftSingle io.Writer
	// RightPaired receives right reads whose mate is in the left file.
	RightPaired io.Writer
	// RightSingle receives right reads without a mate.
	RightSingle io.Writer
}

// Stats counts the reads written to each output.
type Stats struct {
	LeftPaired, RightPaired, LeftSingle, RightSingle int64
}

// String formats the counters as a two-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("Left paired: %d\t\tRight paired: %d\nLeft single: %d\t\tRight single: %d\n",
		s.LeftPaired, s.RightPaired, s.LeftSingle, s.RightSingle)
}

func validation(opts Opts) fastq.Validation {
	if opts.Strict {
		return fastq.Strict
	}
	return fastq.Lenient
}

// BuildIndex scans the left FASTQ stream r once and indexes every read by
// its normalized identifier. r must be positioned at offset 0.
func BuildIndex(r io.Reader, opts Opts) (*Index, error) {
	index, err := NewIndex(opts.TableSize)
	if err != nil {
		return nil, err
	}
	var (
		scanner = fastq.NewScanner(r, validation(opts))
		read    fastq.Read
	)
	for scanner.Scan(&read) {
		id := NormalizeID(read.ID)
		if opts.Verbose {
			log.Printf("ID is |%s| at offset %d", id, scanner.Offset())
		}
		index.Insert(id, scanner.Offset())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, fmt.Sprintf("index left input: read %d", index.Len()))
	}
	return index, nil
}

// pairer holds the state shared by the match and drain phases.
type pairer struct {
	index *Index
	left  *fastq.RandomReader
	out   struct {
		leftPaired, leftSingle, rightPaired, rightSingle *fastq.Writer
	}
	opts  Opts
	stats Stats
	// read buffers, reused across records.
	leftRead, rightRead fastq.Read
}

// PairStreams pairs the reads of left and right, writing them to out. It
// runs three phases in order: index left, stream right against the index,
// then emit the left reads that were never matched. left is read
// sequentially from offset 0 during indexing and by seeking afterwards;
// right is only read sequentially.
//
// Any I/O error aborts the run. The outputs may then be incomplete.
func PairStreams(left io.ReadSeeker, right io.Reader, out Outputs, opts Opts) (Stats, error) {
	index, err := BuildIndex(left, opts)
	if err != nil {
		return Stats{}, err
	}
	log.Debug.Printf("indexed %d left reads into %d buckets", index.Len(), index.Size())
	if opts.PrintBucketCounts {
		w := opts.BucketCounts
		if w == nil {
			w = os.Stdout
		}
		if err := index.WriteBucketCounts(w); err != nil {
			return Stats{}, errors.E(err, "write bucket counts")
		}
	}
	p := &pairer{
		index: index,
		left:  fastq.NewRandomReader(left, validation(opts)),
		opts:  opts,
	}
	p.out.leftPaired = fastq.NewWriter(out.LeftPaired)
	p.out.leftSingle = fastq.NewWriter(out.LeftSingle)
	p.out.rightPaired = fastq.NewWriter(out.RightPaired)
	p.out.rightSingle = fastq.NewWriter(out.RightSingle)
	if err := p.match(right); err != nil {
		return p.stats, err
	}
	log.Debug.Printf("matched right input: %d paired, %d single", p.stats.RightPaired, p.stats.RightSingle)
	if err := p.drain(); err != nil {
		return p.stats, err
	}
	return p.stats, nil
}

// match streams the right input, writing each read and its mate, if any.
func (p *pairer) match(right io.Reader) error {
	scanner := fastq.NewScanner(right, validation(p.opts))
	for scanner.Scan(&p.rightRead) {
		offset, ok := p.index.Lookup(NormalizeID(p.rightRead.ID))
		if !ok {
			if err := p.out.rightSingle.Write(&p.rightRead); err != nil {
				return errors.E(err, "write right single output")
			}
			p.stats.RightSingle++
			continue
		}
		if err := p.left.ReadAt(offset, &p.leftRead); err != nil {
			return errors.E(err, fmt.Sprintf("reload left read at offset %d", offset))
		}
		if err := p.out.leftPaired.Write(&p.leftRead); err != nil {
			return errors.E(err, "write left paired output")
		}
		p.stats.LeftPaired++
		if err := p.out.rightPaired.Write(&p.rightRead); err != nil {
			return errors.E(err, "write right paired output")
		}
		p.stats.RightPaired++
	}
	if err := scanner.Err(); err != nil {
		return errors.E(err, fmt.Sprintf("read right input after %d reads",
			p.stats.RightPaired+p.stats.RightSingle))
	}
	return nil
}

// drain writes every left read the right input never matched.
func (p *pairer) drain() error {
	return p.index.Unmatched(func(offset int64) error {
		if err := p.left.ReadAt(offset, &p.leftRead); err != nil {
			return errors.E(err, fmt.Sprintf("reload left read at offset %d", offset))
		}
		if err := p.out.leftSingle.Write(&p.leftRead); err != nil {
			return errors.E(err, "write left single output")
		}
		p.stats.LeftSingle++
		return nil
	})
}
