package fastq_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/grailbio/fastqpair/encoding/fastq"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) []byte {
	buf := bytes.Buffer{}
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestIsGzipped(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"gzip", gzipped(t, "@r1/1\nACGT\n+\nIIII\n"), true},
		{"plain", []byte("@r1/1\nACGT\n+\nIIII\n"), false},
		{"empty", nil, false},
		{"one byte", []byte{0x1f}, false},
		{"half magic", []byte{0x1f, 0x00, 0x8b}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := fastq.IsGzipped(bytes.NewReader(test.data))
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestIsGzippedReadError(t *testing.T) {
	_, err := fastq.IsGzipped(&failingReader{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "read magic bytes"))
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) { return 0, errFail }

var errFail = errors.New("disk on fire")
