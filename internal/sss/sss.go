// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package sss implements Shamir's secret sharing over GF(2^bits) on
// hex-encoded secrets of arbitrary length.
//
// The secret is prefixed with a single 1 bit so leading zeros survive the
// hex round trip, then cut into bits-wide chunks from the right. Every
// chunk is the constant term of its own random polynomial of degree
// threshold-1; share i holds the evaluations at x = i.
package sss

import (
	"errors"
	"fmt"
	"strings"

	"github.com/complex-gh/shamir39_go/internal/bits"
	"github.com/complex-gh/shamir39_go/internal/gf"
	"github.com/complex-gh/shamir39_go/random"
	"go.uber.org/zap"
)

// maxZeroDraws bounds the resampling of all-zero coefficients
const maxZeroDraws = 64

var (
	// ErrShares is returned for a share count outside [2, max]
	ErrShares = errors.New("invalid number of shares")

	// ErrThreshold is returned for a threshold outside [2, max]
	ErrThreshold = errors.New("invalid threshold")

	// ErrPadding is returned for a negative pad length
	ErrPadding = errors.New("invalid zero-pad length")

	// ErrMismatchedBits is returned when shares declare different field widths
	ErrMismatchedBits = errors.New("mismatched shares: different bit settings")

	// ErrShareID is returned for a share id outside [1, max]
	ErrShareID = errors.New("invalid share id")

	// ErrEmptyShare is returned for a share without data
	ErrEmptyShare = errors.New("invalid share: zero-length share")

	// ErrNoShares is returned when combining nothing
	ErrNoShares = errors.New("no shares provided")

	// ErrNoSentinel is returned when the reconstruction holds no marker bit
	ErrNoSentinel = errors.New("reconstructed secret has no marker bit")

	// ErrDegenerateSource is returned when the random source keeps
	// producing zero
	ErrDegenerateSource = errors.New("random source only produces zero")
)

// Engine splits and combines secrets in one field. An Engine replaces its
// field when asked to combine shares of another width, so it must not be
// shared between goroutines.
type Engine struct {
	field  *gf.Field
	rng    random.Source
	logger *zap.Logger
}

// New creates an engine for GF(2^bits). The random source is self-tested
// before it is accepted.
func New(fieldBits int, rng random.Source, logger *zap.Logger) (*Engine, error) {
	field, err := gf.New(fieldBits)
	if err != nil {
		return nil, err
	}
	if err := random.Validate(rng, fieldBits); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{field: field, rng: rng, logger: logger}, nil
}

// Bits returns the width of the active field
func (e *Engine) Bits() int {
	return e.field.Bits()
}

// Max returns the largest share id or threshold the active field supports
func (e *Engine) Max() int {
	return e.field.Max()
}

// Split divides secretHex into numShares shares, any threshold of which
// recover it. When padLength is positive the secret bits are zero-padded
// on the left to a multiple of it first. Each share is returned as hex;
// with withHeader the field width and share id are prepended, otherwise
// the caller must carry them.
func (e *Engine) Split(secretHex string, numShares, threshold, padLength int, withHeader bool) ([]string, error) {
	limit := e.field.Max()
	if numShares < 2 || numShares > limit {
		return nil, fmt.Errorf("%w: %d, must be between 2 and %d, inclusive", ErrShares, numShares, limit)
	}
	if threshold < 2 || threshold > limit {
		return nil, fmt.Errorf("%w: %d, must be between 2 and %d, inclusive", ErrThreshold, threshold, limit)
	}
	if padLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrPadding, padLength)
	}

	secretBin, err := bits.HexToBin(secretHex)
	if err != nil {
		return nil, err
	}
	chunks, err := bits.Chunks("1"+secretBin, e.field.Bits(), padLength)
	if err != nil {
		return nil, err
	}

	// ys[j] collects share j+1's chunk values, least significant first
	ys := make([][]int, numShares)
	coeffs := make([]int, threshold)
	for _, chunk := range chunks {
		coeffs[0] = chunk
		for k := 1; k < threshold; k++ {
			if coeffs[k], err = e.coefficient(); err != nil {
				return nil, err
			}
		}
		for j := 0; j < numShares; j++ {
			ys[j] = append(ys[j], e.horner(j+1, coeffs))
		}
	}

	e.logger.Debug("split secret",
		zap.Int("bits", e.field.Bits()),
		zap.Int("chunks", len(chunks)),
		zap.Int("shares", numShares),
		zap.Int("threshold", threshold))

	out := make([]string, numShares)
	for j := range ys {
		data, err := e.join(ys[j])
		if err != nil {
			return nil, err
		}
		s := Share{ID: j + 1, Bits: e.field.Bits(), Data: data}
		if withHeader {
			out[j] = s.String()
		} else {
			out[j] = s.Data
		}
	}
	return out, nil
}

// Combine reconstructs the hex secret from shares. Shares repeating an
// earlier id are ignored. A share with Bits == 0 is taken to use the
// active field width.
func (e *Engine) Combine(shares []Share) (string, error) {
	if len(shares) == 0 {
		return "", ErrNoShares
	}

	// every share must agree on the width before the field is touched
	setBits := 0
	for _, s := range shares {
		shareBits := s.Bits
		if shareBits == 0 {
			shareBits = e.field.Bits()
		}
		if setBits == 0 {
			setBits = shareBits
		} else if shareBits != setBits {
			return "", ErrMismatchedBits
		}
	}
	if e.field.Bits() != setBits {
		if err := e.rebuild(setBits); err != nil {
			return "", err
		}
	}

	var xs []int
	var ys [][]int
	for _, s := range shares {
		if s.ID < 1 || s.ID > e.field.Max() {
			return "", fmt.Errorf("%w: %d, must be between 1 and %d, inclusive", ErrShareID, s.ID, e.field.Max())
		}
		if len(s.Data) == 0 {
			return "", ErrEmptyShare
		}
		if contains(xs, s.ID) {
			continue
		}

		bin, err := bits.HexToBin(s.Data)
		if err != nil {
			return "", err
		}
		chunks, err := bits.Chunks(bin, e.field.Bits(), 0)
		if err != nil {
			return "", err
		}
		idx := len(xs)
		xs = append(xs, s.ID)
		for j, c := range chunks {
			if j == len(ys) {
				ys = append(ys, nil)
			}
			for len(ys[j]) < idx {
				ys[j] = append(ys[j], 0)
			}
			ys[j] = append(ys[j], c)
		}
	}

	var sb strings.Builder
	for i := len(ys) - 1; i >= 0; i-- {
		for len(ys[i]) < len(xs) {
			ys[i] = append(ys[i], 0)
		}
		v := e.lagrange(0, xs, ys[i])
		sb.WriteString(bits.Format(uint64(v), e.field.Bits()))
	}
	result := sb.String()

	e.logger.Debug("combined shares",
		zap.Int("bits", e.field.Bits()),
		zap.Int("shares", len(xs)),
		zap.Int("chunks", len(ys)))

	idx := strings.IndexByte(result, '1')
	if idx < 0 {
		return "", ErrNoSentinel
	}
	return bits.BinToHex(result[idx+1:])
}

// coefficient draws a nonzero field element
func (e *Engine) coefficient() (int, error) {
	for i := 0; i < maxZeroDraws; i++ {
		s, err := e.rng.Bits(e.field.Bits())
		if err != nil {
			return 0, err
		}
		if len(s) != e.field.Bits() {
			return 0, fmt.Errorf("%w: asked for %d bits, got %d", random.ErrInvalidSource, e.field.Bits(), len(s))
		}
		v, err := bits.Parse(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", random.ErrInvalidSource, err)
		}
		if v != 0 {
			return int(v), nil
		}
		e.logger.Debug("resampling zero coefficient")
	}
	return 0, ErrDegenerateSource
}

// horner evaluates the polynomial with the given coefficients, constant
// term first, at x. A zero accumulator cannot go through the log table,
// so it takes the next coefficient directly.
func (e *Engine) horner(x int, coeffs []int) int {
	f := e.field
	logx := f.Log(x)
	fx := 0
	for i := len(coeffs) - 1; i >= 0; i-- {
		if fx == 0 {
			fx = coeffs[i]
			continue
		}
		fx = f.Exp((logx+f.Log(fx))%f.Max()) ^ coeffs[i]
	}
	return fx
}

// lagrange evaluates at x = at the polynomial through (xs[i], ys[i]).
// Products are accumulated as sums of logarithms; max is added before
// reducing so the intermediate never goes negative.
func (e *Engine) lagrange(at int, xs, ys []int) int {
	f := e.field
	sum := 0
	for i := range xs {
		if ys[i] == 0 {
			continue
		}
		product := f.Log(ys[i])
		zero := false
		for j := range xs {
			if i == j {
				continue
			}
			if at == xs[j] {
				zero = true
				break
			}
			product = (product + f.Log(at^xs[j]) - f.Log(xs[i]^xs[j]) + f.Max()) % f.Max()
		}
		if !zero {
			sum ^= f.Exp(product)
		}
	}
	return sum
}

// join renders chunk values, least significant first, as one hex string
func (e *Engine) join(chunks []int) (string, error) {
	var sb strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		sb.WriteString(bits.Format(uint64(chunks[i]), e.field.Bits()))
	}
	return bits.BinToHex(sb.String())
}

// rebuild replaces the active field with a freshly built one
func (e *Engine) rebuild(fieldBits int) error {
	field, err := gf.New(fieldBits)
	if err != nil {
		return err
	}
	e.logger.Debug("switching field width",
		zap.Int("from", e.field.Bits()),
		zap.Int("to", fieldBits))
	e.field = field
	return nil
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
