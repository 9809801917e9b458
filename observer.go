package severus

// Observer is notified when a field's extractor yields no value.
type Observer interface {
	Absent(field string)
}

// Watch wraps fields so that obs is told about every absent field.
func Watch[R any](obs Observer, fields ...Field[R]) []Field[R] {
	out := make([]Field[R], len(fields))
	for i, f := range fields {
		resolve := f.resolve
		name := f.name
		out[i] = Field[R]{
			name: name,
			resolve: func(n Node) (func(*R), bool) {
				assign, ok := resolve(n)
				if !ok {
					obs.Absent(name)
				}
				return assign, ok
			},
		}
	}
	return out
}
