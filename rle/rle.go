// Package rle implements a run-length integer codec: an Encoder that
// deterministically packs a slice of int64 values into a byte run, and
// a Decoder that lazily unpacks them one at a time.
//
// Its internal framing is private to this package and must not leak
// into the column codec above it. The wire format uses zigzag + varint
// framing, generalized from a single delta-encoding scheme to three
// interchangeable run kinds chosen per flush:
//
//   - shortRepeat: a single value repeated N times (>=3) in a row.
//   - delta: an arithmetic progression with a constant step (>=2 values).
//   - direct: a literal run of individually zigzag-varint-encoded values,
//     used whenever neither of the above applies.
//
// Every run is prefixed with one header byte: the top two bits select
// the run kind, the low six bits hold (runLength-1), capping a single
// run at 64 values; encode() simply starts a new run when a count would
// exceed that.
package rle

import (
	"encoding/binary"
	"fmt"

	"github.com/pixelsdb/pixels-column-codec/errs"
)

type runKind uint8

const (
	kindShortRepeat runKind = 0
	kindDelta       runKind = 1
	kindDirect      runKind = 2

	maxRunLength = 64

	shortRepeatMinLen = 3
	deltaMinLen       = 2
)

func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

func unzigzag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1) //nolint:gosec
}

// Encoder packs int64 values into the run-length wire format. It is
// stateless between Encode calls: each call produces a complete,
// self-delimited byte run covering exactly the values passed in.
type Encoder struct{}

// NewEncoder creates a run-length integer encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Encode deterministically packs values into a byte slice. The output
// length never exceeds len(values)*11: a varint of a zigzagged int64
// takes up to 10 bytes, so a single-value direct run takes 11 bytes and
// a two-value delta run (header, base, step) up to 21. It is not bounded
// by 9 bytes per value.
func (e *Encoder) Encode(values []int64) []byte {
	if len(values) == 0 {
		return nil
	}

	out := make([]byte, 0, len(values)*2)
	i := 0
	for i < len(values) {
		// Try short-repeat: count identical consecutive values.
		repeatLen := 1
		for repeatLen < maxRunLength && i+repeatLen < len(values) && values[i+repeatLen] == values[i] {
			repeatLen++
		}
		if repeatLen >= shortRepeatMinLen {
			out = appendHeader(out, kindShortRepeat, repeatLen)
			out = appendVarint(out, zigzag(values[i]))
			i += repeatLen

			continue
		}

		// Try delta: constant step across consecutive values.
		if i+1 < len(values) {
			step := values[i+1] - values[i]
			deltaLen := 2
			for i+deltaLen < len(values) && deltaLen < maxRunLength && values[i+deltaLen]-values[i+deltaLen-1] == step {
				deltaLen++
			}
			if deltaLen >= deltaMinLen {
				out = appendHeader(out, kindDelta, deltaLen)
				out = appendVarint(out, zigzag(values[i]))
				out = appendVarint(out, zigzag(step))
				i += deltaLen

				continue
			}
		}

		// Fall back to a direct (literal) run: consume values until a
		// repeat or delta opportunity reappears, or the run cap is hit.
		directLen := 1
		for directLen < maxRunLength && i+directLen < len(values) {
			// Stop early if the next position starts a better run, so
			// the greedy scan above gets a chance to use it.
			if i+directLen+shortRepeatMinLen-1 < len(values) &&
				allEqual(values[i+directLen:i+directLen+shortRepeatMinLen]) {
				break
			}
			directLen++
		}
		out = appendHeader(out, kindDirect, directLen)
		for j := 0; j < directLen; j++ {
			out = appendVarint(out, zigzag(values[i+j]))
		}
		i += directLen
	}

	return out
}

func allEqual(vs []int64) bool {
	for _, v := range vs[1:] {
		if v != vs[0] {
			return false
		}
	}

	return true
}

func appendHeader(out []byte, kind runKind, runLength int) []byte {
	return append(out, byte(kind)<<6|byte(runLength-1)) //nolint:gosec
}

func appendVarint(out []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)

	return append(out, tmp[:n]...)
}

// Decoder lazily decodes a run-length integer byte stream, one value at
// a time, in a single forward pass.
type Decoder struct {
	data []byte
	pos  int

	kind      runKind
	remaining int
	// shortRepeat state
	repeatValue int64
	// delta state
	deltaNext int64
	deltaStep int64
}

// NewDecoder creates a decoder over the given encoded bytes. isSigned
// is accepted for interface symmetry with callers that also handle an
// unsigned variant; this decoder's stream is always zigzag-decoded
// signed values, so the flag has no effect on behavior.
func NewDecoder(data []byte, isSigned bool) *Decoder {
	_ = isSigned

	return &Decoder{data: data}
}

// Next decodes and returns the next value in the stream, advancing the
// cursor. It returns errs.ErrDecodeUnderrun once the stream has been
// exhausted short of the caller's expected count.
func (d *Decoder) Next() (int64, error) {
	if d.remaining == 0 {
		if err := d.readHeader(); err != nil {
			return 0, err
		}
	}

	switch d.kind {
	case kindShortRepeat:
		d.remaining--

		return d.repeatValue, nil
	case kindDelta:
		v := d.deltaNext
		d.deltaNext += d.deltaStep
		d.remaining--

		return v, nil
	case kindDirect:
		zz, err := d.readVarint()
		if err != nil {
			return 0, err
		}
		d.remaining--

		return unzigzag(zz), nil
	default:
		return 0, fmt.Errorf("%w: unknown run kind %d", errs.ErrDecodeUnderrun, d.kind)
	}
}

func (d *Decoder) readHeader() error {
	if d.pos >= len(d.data) {
		return fmt.Errorf("%w: no more run headers", errs.ErrDecodeUnderrun)
	}
	header := d.data[d.pos]
	d.pos++

	d.kind = runKind(header >> 6)
	d.remaining = int(header&0x3F) + 1

	switch d.kind {
	case kindShortRepeat:
		zz, err := d.readVarint()
		if err != nil {
			return err
		}
		d.repeatValue = unzigzag(zz)
	case kindDelta:
		baseZZ, err := d.readVarint()
		if err != nil {
			return err
		}
		stepZZ, err := d.readVarint()
		if err != nil {
			return err
		}
		d.deltaNext = unzigzag(baseZZ)
		d.deltaStep = unzigzag(stepZZ)
	case kindDirect:
		// values read lazily, one per Next() call.
	default:
		return fmt.Errorf("%w: unknown run kind %d", errs.ErrDecodeUnderrun, d.kind)
	}

	return nil
}

func (d *Decoder) readVarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: truncated varint", errs.ErrDecodeUnderrun)
	}
	d.pos += n

	return v, nil
}

// Close releases any resources held by the decoder. Decoder holds none
// beyond its input slice reference, so this is a documented no-op that
// exists to satisfy the owning ColumnReader's symmetric
// acquire/release discipline.
func (d *Decoder) Close() {}
