package severus

import "net/url"

// Resolver computes a request URL from call arguments.
type Resolver[A any] func(A) string

// Literal returns a Resolver that always yields s, whatever the arguments.
func Literal[A any](s string) Resolver[A] {
	return func(A) string { return s }
}

// Structured returns a Resolver that always yields u. The URL is formatted
// once, when the Resolver is built.
func Structured[A any](u *url.URL) Resolver[A] {
	return Literal[A](u.String())
}

// Dynamic returns a Resolver that calls fn with the arguments of every call.
func Dynamic[A any](fn func(A) string) Resolver[A] {
	return Resolver[A](fn)
}

// DynamicStructured returns a Resolver that calls fn with the arguments of
// every call and formats the URL it returns.
func DynamicStructured[A any](fn func(A) *url.URL) Resolver[A] {
	return func(args A) string {
		return fn(args).String()
	}
}

// NewResolver builds a Resolver from src, which must be one of:
//
//   - string: a literal URL
//   - url.URL or *url.URL: a structured URL
//   - Resolver[A], func(A) string, func(A) *url.URL or func(A) url.URL:
//     a URL computed from the arguments at call time
//
// Any other src is an ECONFIG error.
func NewResolver[A any](src any) (Resolver[A], error) {
	switch src := src.(type) {
	case string:
		return Literal[A](src), nil
	case url.URL:
		return Structured[A](&src), nil
	case *url.URL:
		if src == nil {
			return nil, Errorf(ECONFIG, "unable to create URL resolver from a nil *url.URL")
		}
		return Structured[A](src), nil
	case Resolver[A]:
		if src == nil {
			return nil, Errorf(ECONFIG, "unable to create URL resolver from a nil resolver")
		}
		return src, nil
	case func(A) string:
		if src == nil {
			return nil, Errorf(ECONFIG, "unable to create URL resolver from a nil function")
		}
		return Dynamic(src), nil
	case func(A) *url.URL:
		if src == nil {
			return nil, Errorf(ECONFIG, "unable to create URL resolver from a nil function")
		}
		return DynamicStructured(src), nil
	case func(A) url.URL:
		if src == nil {
			return nil, Errorf(ECONFIG, "unable to create URL resolver from a nil function")
		}
		return func(args A) string {
			u := src(args)
			return u.String()
		}, nil
	default:
		return nil, Errorf(ECONFIG, "unable to create URL resolver from a %T", src)
	}
}
