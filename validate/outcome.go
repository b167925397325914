package validate

import (
	"fmt"
	"sort"
	"strings"
)

// Outcome captures validation errors by field path.
type Outcome struct {
	errors map[string][]error
}

func (o *Outcome) Valid() bool {
	return len(o.errors) == 0
}

// Fields returns the sorted paths that have errors.
func (o *Outcome) Fields() []string {
	keys := make([]string, 0, len(o.errors))
	for key := range o.errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (o *Outcome) AddError(
	path string,
	err error,
) {
	if err == nil {
		panic("err cannot be nil")
	}
	if o.errors == nil {
		o.errors = map[string][]error{path: {err}}
	} else {
		o.errors[path] = append(o.errors[path], err)
	}
}

func (o *Outcome) FieldErrors(
	path string,
) []error {
	return o.errors[path]
}

func (o *Outcome) Error() string {
	var s strings.Builder
	for i, key := range o.Fields() {
		if i > 0 {
			s.WriteString("; ")
		}
		_, _ = fmt.Fprintf(&s, "%v: ", key)
		for ii, err := range o.errors[key] {
			if ii > 0 {
				s.WriteString(", ")
			}
			s.WriteString(err.Error())
		}
	}
	return s.String()
}
