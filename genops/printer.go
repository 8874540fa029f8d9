package genops

import (
	"fmt"
	"io"
)

const generatedHeader = "// Generated by rlezoo genops\n"

// printer writes formatted output, remembering the first error so callers can
// check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
