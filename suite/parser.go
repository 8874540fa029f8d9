package suite

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dargueta/rlezoo"
)

// Test is a single line of a suite.
type Test struct {
	Line         int
	Variant      string
	Action       string
	Input        []byte
	ExpectedSize int
	ExpectedHash uint32
}

// Compress returns true if the test compresses its input, false if it
// decompresses it.
func (t Test) Compress() bool {
	return strings.HasPrefix(t.Action, "c")
}

// RoundTrip returns true if the output should be run back through the inverse
// transform and compared with the input.
func (t Test) RoundTrip() bool {
	return !strings.Contains(t.Action, "-")
}

// ParseFile reads the suite at the given path. Input files referenced with `@`
// are resolved relative to the directory containing the suite.
func ParseFile(path string) ([]Test, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file, os.DirFS(filepath.Dir(path)))
}

// Parse reads a suite from r. Input files referenced with `@` are read from
// fsys, which may be nil if the suite doesn't use any.
func Parse(r io.Reader, fsys fs.FS) ([]Test, error) {
	var tests []Test
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if strings.HasPrefix(line, "---") {
			break
		}

		test, err := parseLine(line, fsys)
		if err != nil {
			return tests, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		test.Line = lineNumber
		tests = append(tests, test)
	}
	return tests, scanner.Err()
}

func parseLine(line string, fsys fs.FS) (Test, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields) > 5 {
		return Test{}, rlezoo.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("expected 3 to 5 fields, got %d", len(fields)))
	}

	test := Test{Variant: fields[0], Action: fields[1]}
	if test.Action[0] != 'c' && test.Action[0] != 'd' {
		return Test{}, rlezoo.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("action must start with 'c' or 'd', got %q", test.Action))
	}

	input, err := parseInput(fields[2], fsys)
	if err != nil {
		return Test{}, err
	}
	test.Input = input

	if len(fields) > 3 {
		size, err := strconv.ParseInt(fields[3], 0, 64)
		if err != nil || size < 0 {
			return Test{}, rlezoo.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("invalid expected size %q", fields[3]))
		}
		test.ExpectedSize = int(size)
	}

	if len(fields) > 4 {
		digits := strings.TrimPrefix(strings.ToLower(fields[4]), "0x")
		hash, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return Test{}, rlezoo.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("invalid expected hash %q", fields[4]))
		}
		test.ExpectedHash = uint32(hash)
	}
	return test, nil
}

func parseInput(field string, fsys fs.FS) ([]byte, error) {
	switch {
	case strings.HasPrefix(field, "@"):
		if fsys == nil {
			return nil, rlezoo.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("can't read %q, no file system given", field[1:]))
		}
		data, err := fs.ReadFile(fsys, field[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil

	case len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"':
		return ExpandEscapes(field[1 : len(field)-1])
	}

	return nil, rlezoo.ErrInvalidArgument.WithMessage(
		fmt.Sprintf("input must be quoted or start with '@', got %q", field))
}
