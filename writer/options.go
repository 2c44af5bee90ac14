package writer

import (
	"fmt"

	"github.com/pixelsdb/pixels-column-codec/errs"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/internal/options"
)

// EncodingLevel selects how aggressively a ColumnWriter encodes its
// value region's encoding-level note: higher levels
// trade a cheaper, simpler wire format for a more compact one.
type EncodingLevel uint8

const (
	// EL1 always writes the NONE (fixed-width) encoding.
	EL1 EncodingLevel = iota
	// EL2 writes RUNLENGTH and forces NullsPadding off, since the
	// run-length codec has no notion of a padded slot for a null row.
	EL2
	// EL3 is EL2 plus reserved headroom for a future compacter
	// RUNLENGTH variant; today it behaves identically to EL2.
	EL3
)

func (l EncodingLevel) String() string {
	switch l {
	case EL1:
		return "EL1"
	case EL2:
		return "EL2"
	case EL3:
		return "EL3"
	default:
		return "UNKNOWN"
	}
}

func (l EncodingLevel) encoding() format.Encoding {
	if l == EL1 {
		return format.None
	}

	return format.RunLength
}

// defaultPixelStride matches "typically 10,000 rows" pixel
// size.
const defaultPixelStride = 10000

// Options holds a ColumnWriter's construction-time configuration.
type Options struct {
	PixelStride      int
	EncodingLevel    EncodingLevel
	ByteOrder        format.ByteOrderKind
	NullsPadding     bool
	ChunkCompression format.Compression
}

// Option configures Options; the package's With* constructors each
// produce one, built on the generic functional-options pattern in
// internal/options.
type Option = options.Option[*Options]

// WithPixelStride overrides the default 10,000-row pixel size. n must
// be positive.
func WithPixelStride(n int) Option {
	return options.New(func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("%w: pixel stride must be positive, got %d", errs.ErrInvalidArgument, n)
		}
		o.PixelStride = n

		return nil
	})
}

// WithEncodingLevel selects the writer's target encoding.
func WithEncodingLevel(level EncodingLevel) Option {
	return options.NoError(func(o *Options) { o.EncodingLevel = level })
}

// WithByteOrder selects the byte order used by the NONE encoding path.
// It has no effect once EncodingLevel chooses RUNLENGTH.
func WithByteOrder(kind format.ByteOrderKind) Option {
	return options.NoError(func(o *Options) { o.ByteOrder = kind })
}

// WithNullsPadding requests that null rows still occupy a value slot
// in a NONE-encoded value region. Silently ignored at EncodingLevel
// EL2 and above (see EL2's doc comment).
func WithNullsPadding(pad bool) Option {
	return options.NoError(func(o *Options) { o.NullsPadding = pad })
}

// WithChunkCompression records which compression a caller intends to
// wrap the writer's output bytes with (package compress). The writer
// only stores it in its Options.ChunkCompression field; it never applies
// it, and no writer method returns it.
func WithChunkCompression(c format.Compression) Option {
	return options.NoError(func(o *Options) { o.ChunkCompression = c })
}

func newOptions(opts ...Option) (Options, error) {
	o := Options{
		PixelStride:      defaultPixelStride,
		EncodingLevel:    EL2,
		ByteOrder:        format.LittleEndian,
		NullsPadding:     false,
		ChunkCompression: format.CompressionNone,
	}
	if err := options.Apply(&o, opts...); err != nil {
		return Options{}, err
	}
	if o.EncodingLevel != EL1 {
		o.NullsPadding = false
	}

	return o, nil
}
