package mate

import (
	"bufio"
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

const (
	// PairedSuffix is appended to an input path to name its paired output.
	PairedSuffix = ".paired.fq"
	// SingleSuffix is appended to an input path to name its single output.
	SingleSuffix = ".single.fq"

	outputBufSize = 1 << 20
)

// Paths names the four output files of a run.
type Paths struct {
	LeftPaired, LeftSingle, RightPaired, RightSingle string
}

// OutputPaths derives the output paths from the input paths.
func OutputPaths(leftPath, rightPath string) Paths {
	return Paths{
		LeftPaired:  leftPath + PairedSuffix,
		LeftSingle:  leftPath + SingleSuffix,
		RightPaired: rightPath + PairedSuffix,
		RightSingle: rightPath + SingleSuffix,
	}
}

type outputFile struct {
	f file.File
	w *bufio.Writer
}

func createOutput(ctx context.Context, path string) (*outputFile, error) {
	f, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.E(err, "create output", path)
	}
	return &outputFile{f: f, w: bufio.NewWriterSize(f.Writer(ctx), outputBufSize)}, nil
}

func (o *outputFile) close(ctx context.Context) error {
	err := errors.Once{}
	if e := o.w.Flush(); e != nil {
		err.Set(errors.E(e, "flush", o.f.Name()))
	}
	if e := o.f.Close(ctx); e != nil {
		err.Set(errors.E(e, "close", o.f.Name()))
	}
	return err.Err()
}

// PairFiles pairs the FASTQ files at leftPath and rightPath, writing the
// outputs named by OutputPaths. All six files are opened before any
// data is read. The left file must be seekable.
//
// On error, output files already created are closed but left in place,
// possibly incomplete.
func PairFiles(ctx context.Context, leftPath, rightPath string, opts Opts) (stats Stats, err error) {
	if err = checkTableSize(opts.TableSize); err != nil {
		return
	}
	var left, right file.File
	if left, err = file.Open(ctx, leftPath); err != nil {
		err = errors.E(err, "open left input", leftPath)
		return
	}
	defer file.CloseAndReport(ctx, left, &err)
	if right, err = file.Open(ctx, rightPath); err != nil {
		err = errors.E(err, "open right input", rightPath)
		return
	}
	defer file.CloseAndReport(ctx, right, &err)

	paths := OutputPaths(leftPath, rightPath)
	var outs []*outputFile
	defer func() {
		e := errors.Once{}
		for _, o := range outs {
			e.Set(o.close(ctx))
		}
		if err == nil {
			err = e.Err()
		}
	}()
	for _, path := range []string{paths.LeftPaired, paths.LeftSingle, paths.RightPaired, paths.RightSingle} {
		var o *outputFile
		if o, err = createOutput(ctx, path); err != nil {
			return
		}
		outs = append(outs, o)
	}

	stats, err = PairStreams(left.Reader(ctx), right.Reader(ctx), Outputs{
		LeftPaired:  outs[0].w,
		LeftSingle:  outs[1].w,
		RightPaired: outs[2].w,
		RightSingle: outs[3].w,
	}, opts)
	if err != nil {
		err = errors.E(err, "pair", leftPath, rightPath)
	}
	return
}
