package rlezoo

import "fmt"

// Op identifies the kind of work a single control byte describes.
//
// The order and values of these matter; tables generated from them are
// indexed by Op.
type Op int

const (
	// OpCopy copies Count literal bytes that follow the control byte.
	OpCopy Op = iota
	// OpRepeat replicates the byte following the control byte Count times.
	OpRepeat
	// OpLiteral means the control byte is itself the data. Only PCX uses it.
	OpLiteral
	// OpNoOp consumes the control byte and emits nothing.
	OpNoOp
	// OpInvalid marks a reserved control byte, or a command that can't be
	// encoded by a variant.
	OpInvalid
)

func (op Op) String() string {
	switch op {
	case OpCopy:
		return "CPY"
	case OpRepeat:
		return "REP"
	case OpLiteral:
		return "LIT"
	case OpNoOp:
		return "NOP"
	case OpInvalid:
		return "INVALID"
	}
	return "UNKNOWN"
}

// Command is one decoded unit of work.
type Command struct {
	Op    Op
	Count int
}

// InvalidCommand is what Decode returns for reserved control bytes.
var InvalidCommand = Command{Op: OpInvalid, Count: 0}

func (c Command) String() string {
	if c.Op == OpInvalid {
		return c.Op.String()
	}
	return fmt.Sprintf("%s %d", c.Op, c.Count)
}

////////////////////////////////////////////////////////////////////////////////

// Range is an inclusive range of counts. A range with Min > Max is empty.
type Range struct {
	Min int
	Max int
}

// EmptyRange is the range of counts for an operation a variant doesn't support.
var EmptyRange = Range{Min: 1, Max: 0}

// Valid returns true if the range contains at least one value.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Contains returns true if n falls within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	if !r.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Limits gives the legal counts of every count-carrying operation of a variant.
type Limits struct {
	Copy    Range
	Repeat  Range
	Literal Range
}

// ForOp returns the range for the given operation. Operations that don't carry
// a count get [EmptyRange].
func (l Limits) ForOp(op Op) Range {
	switch op {
	case OpCopy:
		return l.Copy
	case OpRepeat:
		return l.Repeat
	case OpLiteral:
		return l.Literal
	}
	return EmptyRange
}
