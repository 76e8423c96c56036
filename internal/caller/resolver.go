package caller

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// Resolver errors.
var (
	ErrUnsupportedPlatform = errors.New("process argument query not supported on this platform")
	ErrQueryLimit          = errors.New("querying argument size limit")
	ErrProcessLookup       = errors.New("looking up process arguments")
	ErrMalformedArgs       = errors.New("malformed process argument blob")
	ErrEmptyName           = errors.New("empty caller name")
	ErrBufferTooSmall      = errors.New("buffer too small for caller name")
)

// Status codes returned by ResolveCallerName.
const (
	StatusOK          = 0
	StatusFailed      = -1
	StatusBufferSmall = -2
)

// ArgsSource hands out raw argument blobs for processes.
type ArgsSource interface {
	// MaxArgsSize returns the largest blob the source can produce for any
	// process.
	MaxArgsSize() (int, error)
	// FetchArgs fills scratch with the argument blob of pid and returns the
	// number of bytes written. ErrEmptyName is passed through unwrapped.
	FetchArgs(pid int, scratch []byte) (int, error)
}

// Resolver turns process IDs into short program names.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	source ArgsSource
}

// NewResolver creates a Resolver reading blobs from source.
// A nil source makes every call fail with ErrUnsupportedPlatform.
func NewResolver(source ArgsSource) *Resolver {
	return &Resolver{source: source}
}

// New creates a Resolver backed by the platform's argument source.
func New() *Resolver {
	return NewResolver(defaultSource())
}

// Supported reports whether the resolver has an argument source.
func (r *Resolver) Supported() bool {
	return r.source != nil
}

// ResolveInto writes the NUL-terminated short name of pid into buf and
// returns the name length, terminator excluded. buf is left untouched on
// any failure.
func (r *Resolver) ResolveInto(pid int, buf []byte) (int, error) {
	name, err := r.lookup(pid)
	if err != nil {
		return 0, err
	}

	if len(name)+1 > len(buf) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(name)+1, len(buf))
	}

	n := copy(buf, name)
	buf[n] = 0
	return n, nil
}

// Resolve returns the short name of pid.
func (r *Resolver) Resolve(pid int) (string, error) {
	name, err := r.lookup(pid)
	if err != nil {
		return "", err
	}
	return string(name), nil
}

// lookup fetches the blob of pid into a scratch buffer owned by this call
// and returns the short name as a slice of it.
func (r *Resolver) lookup(pid int) ([]byte, error) {
	if r.source == nil {
		return nil, ErrUnsupportedPlatform
	}

	limit, err := r.source.MaxArgsSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryLimit, err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: non-positive limit %d", ErrQueryLimit, limit)
	}

	scratch := make([]byte, limit)
	n, err := r.source.FetchArgs(pid, scratch)
	if errors.Is(err, ErrEmptyName) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: pid %d: %w", ErrProcessLookup, pid, err)
	}
	if n < 0 || n > len(scratch) {
		return nil, fmt.Errorf("%w: source reported %d bytes for a %d byte buffer", ErrMalformedArgs, n, len(scratch))
	}

	return ShortName(scratch[:n])
}

// ShortName extracts the final path segment of argv[0] from a raw argument
// blob. The returned slice aliases blob.
func ShortName(blob []byte) ([]byte, error) {
	// End of the leading region.
	cp := bytes.IndexByte(blob, 0)
	if cp < 0 {
		return nil, fmt.Errorf("%w: no terminator after leading region", ErrMalformedArgs)
	}

	// Skip the padding in front of argv[0].
	for cp < len(blob) && blob[cp] == 0 {
		cp++
	}
	if cp == len(blob) {
		return nil, fmt.Errorf("%w: no argument after leading region", ErrMalformedArgs)
	}

	start := cp
	for ; cp < len(blob) && blob[cp] != 0; cp++ {
		if blob[cp] == '/' {
			start = cp + 1
		}
	}

	if start == cp {
		return nil, ErrEmptyName
	}
	return blob[start:cp], nil
}

// Code maps an error from this package onto a C-style status code.
func Code(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrBufferTooSmall):
		return StatusBufferSmall
	default:
		return StatusFailed
	}
}

// ResolveCallerName resolves pid with the platform resolver into buf.
// It returns StatusOK, StatusBufferSmall when the name does not fit, or
// StatusFailed for every other failure.
func ResolveCallerName(pid uint64, buf []byte) int {
	if pid > math.MaxInt32 {
		return StatusFailed
	}
	_, err := New().ResolveInto(int(pid), buf)
	return Code(err)
}
