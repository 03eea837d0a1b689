package util

import (
	"fmt"
	"io"
	"strings"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Writer accumulates textual output in a strings.Builder and flushes it synchronously
// to an io.Writer. The allocator runs single-threaded (§5 of the allocator contract),
// so unlike the teacher's Writer there is no worker-thread fan-in channel: Dump writes
// directly, the way a library prints a one-off diagnostic dump.
type Writer struct {
	sb strings.Builder
}

// ---------------------
// ----- Constants -----
// ---------------------

// ---------------------
// ----- Functions -----
// ---------------------

// Write writes a format string to the Writer's buffer.
func (w *Writer) Write(format string, args ...interface{}) {
	w.sb.WriteString(fmt.Sprintf(format, args...))
}

// WriteString writes a plain string to the Writer's buffer.
func (w *Writer) WriteString(s string) {
	w.sb.WriteString(s)
}

// Ins1 writes a one-line instruction using the operator and single operand.
func (w *Writer) Ins1(op, rs1 string) {
	w.sb.WriteString(fmt.Sprintf("\t%s\t%s\n", op, rs1))
}

// Ins2 writes a one-line instruction using the operator, destination operand and single source operand.
func (w *Writer) Ins2(op, rd, rs1 string) {
	w.sb.WriteString(fmt.Sprintf("\t%s\t%s, %s\n", op, rd, rs1))
}

// LoadStore writes a load or store instruction of operand reg with offset to the pointer operand
// (usually the frame pointer).
func (w *Writer) LoadStore(op, reg string, offset int, pointer string) {
	w.sb.WriteString(fmt.Sprintf("\t%s\t%s, [%s, #%d]\n", op, reg, pointer, offset))
}

// Label writes a one-line label with the given name.
func (w *Writer) Label(name string) {
	w.sb.WriteString(fmt.Sprintf("%s:\n", name))
}

// String returns the buffered text without flushing it.
func (w *Writer) String() string {
	return w.sb.String()
}

// Dump flushes the Writer's buffer to dst and resets the buffer.
func (w *Writer) Dump(dst io.Writer) error {
	_, err := io.WriteString(dst, w.sb.String())
	w.sb.Reset()
	return err
}
