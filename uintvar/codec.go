package uintvar

// Codec encodes and decodes uintvars within a fixed Bound. A Codec is
// immutable and safe for concurrent use.
type Codec struct {
	max Bound
}

func NewCodec(max Bound) *Codec {
	return &Codec{
		max: max,
	}
}

// Bound returns the maximum number of bytes a single value may occupy.
func (c *Codec) Bound() Bound {
	return c.max
}

var (
	defaultCodec = NewCodec(Unbounded)
	codec32      = NewCodec(MaxBytes(MaxLen32))
)
