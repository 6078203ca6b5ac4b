package codec

// Enum decodes a single-byte enumerated field against a closed set of
// variants.
type Enum[T ~uint8] struct {
	field string
	known [256]bool
}

// NewEnum builds the code table for field from every variant it admits.
func NewEnum[T ~uint8](field string, variants ...T) *Enum[T] {
	e := &Enum[T]{field: field}
	for _, v := range variants {
		e.known[v] = true
	}
	return e
}

// Field returns the name used in decode errors.
func (e *Enum[T]) Field() string {
	return e.field
}

// Parse maps code to its variant.
func (e *Enum[T]) Parse(code byte) (T, error) {
	if !e.known[code] {
		return 0, decodeErrorf(e.field, nil, "code %d not supported", code)
	}
	return T(code), nil
}

// Read consumes exactly one byte from r and maps it to its variant.
func (e *Enum[T]) Read(r *Reader) (T, error) {
	code, err := r.Byte(e.field)
	if err != nil {
		return 0, err
	}
	return e.Parse(code)
}
