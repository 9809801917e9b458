package severus

// Extractor pulls a value of type T out of a Node. The boolean result is
// false when the value is absent, which is distinct from any zero value of T.
//
// Extractors hold no state and may be shared across goroutines.
type Extractor[T any] func(Node) (T, bool)

// Within resolves selector against the input node and passes the first match
// to fn. When nothing matches, the result is absent and fn is not called.
// Self passes the input node through unchanged.
func Within[T any](selector string, fn Extractor[T]) Extractor[T] {
	return func(n Node) (T, bool) {
		if selector == Self {
			return fn(n)
		}
		match, ok := n.Find(selector)
		if !ok {
			var zero T
			return zero, false
		}
		return fn(match)
	}
}

// Map transforms the value produced by ex. Absent values are passed through
// without calling fn.
func Map[T, U any](ex Extractor[T], fn func(T) U) Extractor[U] {
	return func(n Node) (U, bool) {
		v, ok := ex(n)
		if !ok {
			var zero U
			return zero, false
		}
		return fn(v), true
	}
}

// TryMap is like Map but with a fallible transform. A value fn rejects is
// reported as absent.
func TryMap[T, U any](ex Extractor[T], fn func(T) (U, error)) Extractor[U] {
	return func(n Node) (U, bool) {
		var zero U
		v, ok := ex(n)
		if !ok {
			return zero, false
		}
		u, err := fn(v)
		if err != nil {
			return zero, false
		}
		return u, true
	}
}

// Optional lifts ex into an extractor that is always present and yields nil
// where ex is absent. Record fields of pointer type built with Optional make
// absence visible in the final result.
func Optional[T any](ex Extractor[T]) Extractor[*T] {
	return func(n Node) (*T, bool) {
		v, ok := ex(n)
		if !ok {
			return nil, true
		}
		return &v, true
	}
}

// Or substitutes fallback where ex is absent.
func Or[T any](ex Extractor[T], fallback T) Extractor[T] {
	return func(n Node) (T, bool) {
		if v, ok := ex(n); ok {
			return v, true
		}
		return fallback, true
	}
}
