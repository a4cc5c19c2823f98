package line

import (
	"bufio"
	"io"
)

// Reader adapts a raw byte stream to the two read shapes the request parser
// needs: line-delimited reads and bounded raw reads. Lines are delimited by
// \n, optionally preceded by \r; the delimiter is stripped.
type Reader struct {
	src *bufio.Reader
}

func NewReader(source io.Reader) *Reader {
	return &Reader{
		src: bufio.NewReader(source),
	}
}

func NewReaderSize(source io.Reader, size int) *Reader {
	return &Reader{
		src: bufio.NewReaderSize(source, size),
	}
}

// ReadLine blocks until a whole line is available and returns it without
// the trailing delimiter. A stream ending mid-line yields the partial line
// without an error; io.EOF is returned only when no bytes were read at all.
func (r *Reader) ReadLine() (string, error) {
	data, err := r.src.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(data) > 0 {
			return trimLineEnding(data), nil
		}

		return "", err
	}

	return trimLineEnding(data), nil
}

// ReadN reads exactly n bytes from the remaining stream, or fewer if the
// stream ends first. The short read is returned as-is, without an error;
// anything but EOF propagates. The buffer grows with the bytes actually
// received, so a declared length far beyond what the peer ever sends
// costs nothing.
func (r *Reader) ReadN(n int) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.src, int64(n)))
}

func trimLineEnding(data string) string {
	if len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}
	if len(data) > 0 && data[len(data)-1] == '\r' {
		data = data[:len(data)-1]
	}

	return data
}
