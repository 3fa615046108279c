package fastq

import "io"

var newline = []byte{'\n'}

// Writer is a FASTQ file writer.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter constructs a new FASTQ writer
// that writes reads to the underlying writer w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes the read r in FASTQ format. Every line, including the
// last, is terminated by '\n'. Once a write fails, Write keeps
// returning the same error.
func (w *Writer) Write(r *Read) error {
	w.writeln(r.ID)
	w.writeln(r.Seq)
	w.writeln(r.Unk)
	w.writeln(r.Qual)
	return w.err
}

func (w *Writer) writeln(line []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
