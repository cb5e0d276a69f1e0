package basic

import "github.com/google/btree"

type programLine struct {
	number int
	source string
	stmt   Stmt
}

func lessLine(a, b *programLine) bool {
	return a.number < b.number
}

func lineKey(number int) *programLine {
	return &programLine{number: number}
}

// Program stores the numbered lines entered by the user, ordered by line
// number regardless of the order they were typed in.
type Program struct {
	lines *btree.BTreeG[*programLine]
}

func NewProgram() *Program {
	return &Program{btree.NewG[*programLine](8, lessLine)}
}

// AddOrReplace stores the source text of a line. A line that already exists
// loses its parsed statement until SetStatement is called again.
func (program *Program) AddOrReplace(number int, source string) {
	program.lines.ReplaceOrInsert(&programLine{number: number, source: source})
}

// Remove deletes a line; removing a missing line does nothing.
func (program *Program) Remove(number int) {
	program.lines.Delete(lineKey(number))
}

// SetStatement attaches a parsed statement to an existing line.
func (program *Program) SetStatement(number int, stmt Stmt) error {
	line, ok := program.lines.Get(lineKey(number))
	if !ok {
		return NewError(SyntaxError)
	}
	line.stmt = stmt
	return nil
}

func (program *Program) Clear() {
	program.lines.Clear(false)
}

// List returns the source text of every line in ascending order.
func (program *Program) List() []string {
	sources := make([]string, 0, program.lines.Len())
	program.lines.Ascend(func(line *programLine) bool {
		sources = append(sources, line.source)
		return true
	})
	return sources
}

func (program *Program) Source(number int) (string, bool) {
	line, ok := program.lines.Get(lineKey(number))
	if !ok {
		return "", false
	}
	return line.source, true
}

// Statement returns the parsed statement of a line, which is nil for a line
// that was added but never parsed.
func (program *Program) Statement(number int) (Stmt, bool) {
	line, ok := program.lines.Get(lineKey(number))
	if !ok {
		return nil, false
	}
	return line.stmt, true
}

func (program *Program) Has(number int) bool {
	return program.lines.Has(lineKey(number))
}

// First returns the lowest line number.
func (program *Program) First() (int, bool) {
	line, ok := program.lines.Min()
	if !ok {
		return 0, false
	}
	return line.number, true
}

// Next returns the lowest line number greater than the given one, which does
// not need to exist itself.
func (program *Program) Next(number int) (int, bool) {
	next, found := 0, false
	program.lines.AscendGreaterOrEqual(lineKey(number), func(line *programLine) bool {
		if line.number == number {
			return true
		}
		next, found = line.number, true
		return false
	})
	return next, found
}

func (program *Program) Len() int {
	return program.lines.Len()
}
