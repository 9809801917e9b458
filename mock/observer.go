package mock

import "github.com/jimmed/severus"

var _ severus.Observer = (*Observer)(nil)

// Observer is a mock implementation of severus.Observer.
type Observer struct {
	AbsentFn func(field string)
}

func (o *Observer) Absent(field string) {
	o.AbsentFn(field)
}
