package severus

// Option configures a leaf extractor or a table.
// Options that do not apply to an extractor are ignored by it.
type Option func(*options)

type options struct {
	trim         bool
	raw          bool
	attribute    string
	radix        int
	rowContainer bool
}

func newOptions(opts []Option) options {
	o := options{
		trim:         true,
		attribute:    "href",
		radix:        10,
		rowContainer: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NoTrim keeps leading and trailing whitespace of extracted text.
// For Int it also disables skipping leading whitespace before the digits.
func NoTrim() Option {
	return func(o *options) {
		o.trim = false
	}
}

// Raw selects the unprocessed attribute value on nodes implementing
// RawAttrNode.
func Raw() Option {
	return func(o *options) {
		o.raw = true
	}
}

// Attribute sets the attribute URL reads. Defaults to "href".
func Attribute(name string) Option {
	return func(o *options) {
		o.attribute = name
	}
}

// Radix sets the base Int parses digits in. Defaults to 10.
// A radix of 0 means 10, or 16 when the text starts with "0x".
func Radix(n int) Option {
	return func(o *options) {
		o.radix = n
	}
}

// NoRowContainer makes Table look for rows directly under its selector
// instead of inside a tbody element.
func NoRowContainer() Option {
	return func(o *options) {
		o.rowContainer = false
	}
}
