package parser

// Position locates a byte in a source file. Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
}

type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return e.File + ":" + itoa(e.Line) + ":" + itoa(e.Column) + ": " + e.Message
	}
	return "line " + itoa(e.Line) + ": " + e.Message
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	s := ""
	for i > 0 {
		s = string(rune('0'+i%10)) + s
		i /= 10
	}
	return s
}
