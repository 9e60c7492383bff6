// Human-readable dump of Messages and Attributes, the format a
// command-line capture tool would print to a terminal.

package ipp

import (
	"bytes"
	"fmt"
)

// Formatter accumulates a text dump of one or more Messages/Attributes
// into an internal buffer, reusable across dumps via Reset.
type Formatter struct {
	buf    bytes.Buffer
	indent int
}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Reset clears the formatter's accumulated output. The indent set by
// SetIndent is preserved.
func (f *Formatter) Reset() {
	f.buf.Reset()
}

// SetIndent sets the base indentation, in spaces, that FmtAttribute
// applies to the lines it writes. FmtRequest and FmtResponse ignore it -
// their layout is fixed by the message structure itself.
func (f *Formatter) SetIndent(indent int) {
	f.indent = indent
}

// String returns the formatter's accumulated output.
func (f *Formatter) String() string {
	return f.buf.String()
}

func (f *Formatter) writeIndent(n int) {
	for i := 0; i < n; i++ {
		f.buf.WriteByte(' ')
	}
}

// FmtAttribute formats a single attribute, recursing into nested
// Collection values, each nesting level indented 4 spaces past its
// parent. Multiple values of the same attribute ("1setOf") are written
// space-separated on one line, except Collection values, which each get
// their own brace block.
func (f *Formatter) FmtAttribute(attr Attribute) {
	f.fmtAttribute(attr, f.indent, "ATTR")
}

// fmtAttribute is FmtAttribute's recursive worker: indent is the column
// the attribute's own line starts at, and label is "ATTR" at the top
// level or "MEMBER" for a collection member.
func (f *Formatter) fmtAttribute(attr Attribute, indent int, label string) {
	f.writeIndent(indent)
	fmt.Fprintf(&f.buf, "%s %q", label, attr.Name)

	tag := TagZero
	for _, val := range attr.Values {
		if collection, ok := val.V.(Collection); ok {
			if val.T != tag {
				fmt.Fprintf(&f.buf, " %s: {\n", val.T)
			} else {
				f.buf.WriteByte('\n')
				f.writeIndent(indent)
				f.buf.WriteString("{\n")
			}

			for _, member := range Attributes(collection) {
				f.fmtAttribute(member, indent+4, "MEMBER")
			}

			f.writeIndent(indent)
			f.buf.WriteString("}")
			tag = val.T
			continue
		}

		if val.T != tag {
			fmt.Fprintf(&f.buf, " %s:", val.T)
			tag = val.T
		}
		fmt.Fprintf(&f.buf, " %s", val.V)
	}

	f.buf.WriteByte('\n')
}

// FmtRequest formats m as a request, interpreting m.Code as an Op.
func (f *Formatter) FmtRequest(m *Message) {
	f.fmtMessage(m, true)
}

// FmtResponse formats m as a response, interpreting m.Code as a Status.
func (f *Formatter) FmtResponse(m *Message) {
	f.fmtMessage(m, false)
}

func (f *Formatter) fmtMessage(m *Message, request bool) {
	fmt.Fprintf(&f.buf, "{\n")
	fmt.Fprintf(&f.buf, "    REQUEST-ID %d\n", m.RequestID)
	fmt.Fprintf(&f.buf, "    VERSION %s\n", m.Version)

	if request {
		fmt.Fprintf(&f.buf, "    OPERATION %s\n", Op(m.Code))
	} else {
		fmt.Fprintf(&f.buf, "    STATUS %s\n", Status(m.Code))
	}

	for _, grp := range m.AttrGroups() {
		fmt.Fprintf(&f.buf, "\n    GROUP %s\n", grp.Tag)
		for _, attr := range grp.Attrs {
			f.fmtAttribute(attr, 4, "ATTR")
		}
	}

	fmt.Fprintf(&f.buf, "}\n")
}
