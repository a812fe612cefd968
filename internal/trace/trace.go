// Package trace reads access traces in the driver format:
// whitespace separated integers, the cache capacity,
// the number of keys, then that many keys.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

type constError string

// ErrMalformedTrace is wrapped by every parse error from [Read].
const ErrMalformedTrace = constError("malformed trace")

func (errStr constError) Error() string { return string(errStr) }

// maxPreallocated bounds the key slice reserved from
// the announced amount, before any key is read.
const maxPreallocated = 1 << 16

// Trace is a parsed access trace.
type Trace struct {
	Keys     []int
	Capacity int
}

// Read parses a trace from r.
// Input after the last announced key is ignored.
func Read(r io.Reader) (*Trace, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	capacity, err := next(scanner, "size")
	if err != nil {
		return nil, err
	}
	count, err := next(scanner, "keys amount")
	if err != nil {
		return nil, err
	}
	if capacity < 0 || count < 0 {
		return nil, fmt.Errorf("%w: negative size or keys amount", ErrMalformedTrace)
	}
	keys := make([]int, 0, min(count, maxPreallocated))
	for i := range count {
		key, err := next(scanner, "key")
		if err != nil {
			return nil, fmt.Errorf("%w (index %d)", err, i)
		}
		keys = append(keys, key)
	}
	return &Trace{Keys: keys, Capacity: capacity}, nil
}

func next(scanner *bufio.Scanner, field string) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", field, err)
		}
		return 0, fmt.Errorf("%w: incorrect %s: unexpected end of input",
			ErrMalformedTrace, field)
	}
	value, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: incorrect %s: %w", ErrMalformedTrace, field, err)
	}
	return value, nil
}

// Open returns a reader for the trace at path.
// An empty path or "-" reads standard input.
// Paths ending in ".zst" are decompressed.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	if !strings.HasSuffix(path, ".zst") {
		return file, nil
	}
	decoder, err := zstd.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	return &zstdFile{Decoder: decoder, file: file}, nil
}

type zstdFile struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

// Load opens and parses the trace at path.
func Load(path string) (*Trace, error) {
	reader, err := Open(path)
	if err != nil {
		return nil, err
	}
	trace, err := Read(reader)
	return trace, errors.Join(err, reader.Close())
}
