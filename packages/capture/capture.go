package capture

import "strings"

// DefaultMethod is the duplication method generated bindings call when no
// override is configured.
const DefaultMethod = "Clone"

// MutMarker is the trailing comment carried by bindings generated from mut
// entries. Go locals are always assignable, so the qualifier survives only
// as this marker.
const MutMarker = "// mut"

// Specifier is a single capture list entry: an identifier to duplicate and
// rebind, optionally qualified with mut. Line and Column locate the entry in
// the host file.
type Specifier struct {
	Name    string
	Mutable bool
	Line    int
	Column  int
}

func (s Specifier) String() string {
	if s.Mutable {
		return "mut " + s.Name
	}
	return s.Name
}

// List is an ordered capture list. Order is the order the entries were
// written; duplicate names are kept.
type List []Specifier

func (l List) Empty() bool {
	return len(l) == 0
}

func (l List) Names() []string {
	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.Name
	}
	return names
}

// MutableCount returns how many entries carry the mut qualifier.
func (l List) MutableCount() int {
	count := 0
	for _, s := range l {
		if s.Mutable {
			count++
		}
	}
	return count
}

// String renders the list in canonical form: comma-separated entries with
// mut qualifiers preserved and no trailing comma.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// Binding is the statement generated for one specifier. The right-hand side
// names the binding in scope before the directive, so every duplicate is
// taken from the pre-directive value; the := declaration then shadows it.
type Binding struct {
	Name    string
	Mutable bool
	Method  string
}

func (b Binding) String() string {
	stmt := b.Name + " := " + b.Name + "." + b.Method + "()"
	if b.Mutable {
		stmt += " " + MutMarker
	}
	return stmt
}

// Bindings produces one binding per specifier, in list order. An empty
// method selects DefaultMethod.
func (l List) Bindings(method string) []Binding {
	if method == "" {
		method = DefaultMethod
	}
	bindings := make([]Binding, len(l))
	for i, s := range l {
		bindings[i] = Binding{Name: s.Name, Mutable: s.Mutable, Method: method}
	}
	return bindings
}
