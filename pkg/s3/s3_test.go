package s3

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressReadSeeker_ReportsMonotonicProgress(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 1000)
	var reported []int
	r := &progressReadSeeker{
		inner:      bytes.NewReader(data),
		total:      int64(len(data)),
		onProgress: func(pct int) { reported = append(reported, pct) },
	}

	buf := make([]byte, 100)
	for {
		if _, err := r.Read(buf); err == io.EOF {
			break
		}
	}

	assert.NotEmpty(t, reported)
	last := -1
	for _, pct := range reported {
		assert.GreaterOrEqual(t, pct, last)
		assert.LessOrEqual(t, pct, 100)
		last = pct
	}
	assert.Equal(t, 100, reported[len(reported)-1])
}

func TestProgressReadSeeker_SeekRewindsProgress(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 100)
	var last int
	r := &progressReadSeeker{
		inner:      bytes.NewReader(data),
		total:      int64(len(data)),
		onProgress: func(pct int) { last = pct },
	}

	buf := make([]byte, 50)
	_, err := r.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 50, last)

	// An SDK retry seeks back to the start; progress restarts from there
	pos, err := r.Seek(0, io.SeekStart)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	_, err = r.Read(buf[:10])
	assert.NoError(t, err)
	assert.Equal(t, 10, last)
}
