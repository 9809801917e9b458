package severus

// Field is one named field of a record of type R, together with the
// extractor producing its value.
type Field[R any] struct {
	name    string
	resolve func(Node) (assign func(*R), ok bool)
}

// Set builds a Field named name. assign stores the extracted value into the
// record and is only called when ex yields a value, so absent fields keep
// their zero value.
func Set[R, T any](name string, ex Extractor[T], assign func(*R, T)) Field[R] {
	return Field[R]{
		name: name,
		resolve: func(n Node) (func(*R), bool) {
			v, ok := ex(n)
			if !ok {
				return nil, false
			}
			return func(r *R) { assign(r, v) }, true
		},
	}
}

// Name returns the field name.
func (f Field[R]) Name() string {
	return f.name
}

// Section scopes to the first node matching selector and applies every
// field to it independently, in declaration order. When selector does not
// match the whole section is absent and no field extractor runs.
func Section[R any](selector string, fields ...Field[R]) Extractor[R] {
	return Within(selector, func(n Node) (R, bool) {
		var r R
		Column[R](fields).partial(n).apply(&r)
		return r, true
	})
}

// List applies ex to every node matching selector, in document order.
// A selector without matches yields an empty slice, never an absent value.
// Items ex reports absent keep their position as the zero value of T.
func List[T any](selector string, ex Extractor[T]) Extractor[[]T] {
	return func(n Node) ([]T, bool) {
		nodes := findAll(n, selector)
		out := make([]T, len(nodes))
		for i, node := range nodes {
			out[i], _ = ex(node)
		}
		return out, true
	}
}

func findAll(n Node, selector string) []Node {
	if selector == Self {
		return []Node{n}
	}
	return n.FindAll(selector)
}

// Column holds the fields one position of a Tuple contributes.
// A nil Column contributes nothing.
type Column[R any] []Field[R]

// partial is the ordered list of assignments one column produced.
type partial[R any] []func(*R)

func (c Column[R]) partial(n Node) partial[R] {
	var p partial[R]
	for _, f := range c {
		if assign, ok := f.resolve(n); ok {
			p = append(p, assign)
		}
	}
	return p
}

func (p partial[R]) apply(r *R) {
	for _, assign := range p {
		assign(r)
	}
}

// merge folds partials into one record, left to right. A field assigned by
// several partials keeps the last value.
func merge[R any](partials []partial[R]) R {
	var r R
	for _, p := range partials {
		p.apply(&r)
	}
	return r
}

// Tuple assembles one record from a run of sibling nodes, such as the cells
// of a table row. The node at position i matching selector is handed to
// columns[i]. Positions past the end of columns, and nil columns, contribute
// nothing. Fields no position produces are left at their zero value; Tuple
// is never absent. When several positions set the same field the last
// present value wins; an absent value never overwrites an earlier one, so
// wrap the extractor in Optional to record absence explicitly.
func Tuple[R any](selector string, columns ...Column[R]) Extractor[R] {
	return func(n Node) (R, bool) {
		nodes := findAll(n, selector)
		partials := make([]partial[R], 0, len(nodes))
		for i, node := range nodes {
			if i >= len(columns) || columns[i] == nil {
				continue
			}
			partials = append(partials, columns[i].partial(node))
		}
		return merge(partials), true
	}
}

// Table decodes the rows of every table matching selector into records, one
// Tuple over the td cells of each row, in document order. Rows are looked up
// inside tbody unless NoRowContainer is given.
func Table[R any](selector string, columns []Column[R], opts ...Option) Extractor[[]R] {
	o := newOptions(opts)
	rows := "tr"
	if o.rowContainer {
		rows = "tbody tr"
	}
	row := Tuple("td", columns...)
	return func(n Node) ([]R, bool) {
		out := []R{}
		for _, table := range findAll(n, selector) {
			for _, tr := range table.FindAll(rows) {
				r, _ := row(tr)
				out = append(out, r)
			}
		}
		return out, true
	}
}
