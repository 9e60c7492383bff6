// IPP protocol messages.

package ipp

import (
	"bytes"
	"fmt"
	"io"
)

// Code represents an Op (operation) or Status code, depending on whether
// the Message that carries it is a request or a response.
type Code uint16

// Version represents a protocol version: Major and Minor packed into a
// single 16-bit word.
type Version uint16

// DefaultVersion is the default IPP version this package emits.
const DefaultVersion Version = 0x0200

// ContentType is the MIME type an HTTP transport must set on every IPP
// request and that an IPP response carries in turn.
const ContentType = "application/ipp"

// MakeVersion makes a Version from its major and minor parts.
func MakeVersion(major, minor uint8) Version {
	return Version(major)<<8 | Version(minor)
}

// Major returns the major part of the version.
func (v Version) Major() uint8 { return uint8(v >> 8) }

// Minor returns the minor part of the version.
func (v Version) Minor() uint8 { return uint8(v) }

// String converts Version to a string, e.g. "2.0".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Message represents a single IPP message: either a client Request or a
// server Response. Request and Response are not distinct Go types - both
// share this one encode/decode path, and Code is documented per direction:
// operation-id for a request, status-code for a response.
//
// Attributes can be reached two ways: the per-group convenience fields
// (Operation, Job, Printer, Unsupported) for the common case of building a
// message group by group, or the raw Groups slice for anything that needs
// wire-exact group order or repeated groups of the same tag (a decoded
// message always populates Groups; AttrGroups reconciles the two views).
type Message struct {
	Version   Version // Protocol version
	Code      Code    // Operation for request, status for response
	RequestID uint32  // Set in request, returned in response

	Operation   Attributes // operation-attributes-tag
	Job         Attributes // job-attributes-tag
	Printer     Attributes // printer-attributes-tag
	Unsupported Attributes // unsupported-attributes-tag

	Subscription      Attributes // subscription-attributes-tag
	EventNotification Attributes // event-notification-attributes-tag
	Resource          Attributes // resource-attributes-tag
	Document          Attributes // document-attributes-tag
	System            Attributes // system-attributes-tag
	Future11          Attributes // reserved for a future group
	Future12          Attributes // reserved for a future group
	Future13          Attributes // reserved for a future group
	Future14          Attributes // reserved for a future group
	Future15          Attributes // reserved for a future group

	// Groups holds the message's attribute groups in wire order. When
	// non-nil it takes precedence over Operation/Job/Printer/Unsupported
	// in AttrGroups, Encode, and Print - this is how a decoded message,
	// which may carry several printer-attributes-tag groups back to
	// back (e.g. one per queried printer), is represented without
	// forcing them into a single merged Attributes slice.
	Groups Groups

	// Data carries whatever bytes follow the end-of-attributes-tag, i.e.
	// the document data of a Send-Document/Print-Job request. Response
	// messages normally leave this nil.
	Data []byte
}

// NewRequest creates a new request message. Use DefaultVersion as the
// first argument absent a specific reason to pin an older version.
func NewRequest(v Version, op Op, id uint32) *Message {
	return &Message{Version: v, Code: Code(op), RequestID: id}
}

// NewResponse creates a new response message.
func NewResponse(v Version, status Status, id uint32) *Message {
	return &Message{Version: v, Code: Code(status), RequestID: id}
}

// NewMessageWithGroups creates a message from an explicit Groups slice,
// populating the per-group convenience fields from it. Multiple groups
// sharing printer-attributes-tag are concatenated into Printer.
func NewMessageWithGroups(v Version, code Code, id uint32, groups Groups) *Message {
	m := &Message{Version: v, Code: code, RequestID: id, Groups: groups}
	m.populateConvenienceFields()
	return m
}

// populateConvenienceFields fills Operation/Job/Printer/... from m.Groups.
// Multiple groups sharing a tag (e.g. several printer-attributes-tag
// groups in a multi-printer Get-Printer-Attributes response) are
// concatenated into the one matching field. Called both by
// NewMessageWithGroups and by the wire decoder, so every route that
// produces a Message with a populated Groups slice keeps the convenience
// fields in sync with it.
func (m *Message) populateConvenienceFields() {
	for _, g := range m.Groups {
		switch g.Tag {
		case TagOperationGroup:
			m.Operation = append(m.Operation, g.Attrs...)
		case TagJobGroup:
			m.Job = append(m.Job, g.Attrs...)
		case TagPrinterGroup:
			m.Printer = append(m.Printer, g.Attrs...)
		case TagUnsupportedGroup:
			m.Unsupported = append(m.Unsupported, g.Attrs...)
		case TagSubscriptionGroup:
			m.Subscription = append(m.Subscription, g.Attrs...)
		case TagEventNotificationGroup:
			m.EventNotification = append(m.EventNotification, g.Attrs...)
		case TagResourceGroup:
			m.Resource = append(m.Resource, g.Attrs...)
		case TagDocumentGroup:
			m.Document = append(m.Document, g.Attrs...)
		case TagSystemGroup:
			m.System = append(m.System, g.Attrs...)
		case TagFuture11Group:
			m.Future11 = append(m.Future11, g.Attrs...)
		case TagFuture12Group:
			m.Future12 = append(m.Future12, g.Attrs...)
		case TagFuture13Group:
			m.Future13 = append(m.Future13, g.Attrs...)
		case TagFuture14Group:
			m.Future14 = append(m.Future14, g.Attrs...)
		case TagFuture15Group:
			m.Future15 = append(m.Future15, g.Attrs...)
		}
	}
}

// AttrGroups returns the message's attribute groups, in wire order. If
// m.Groups is non-nil it is returned as is; otherwise a Groups slice is
// synthesized from Operation/Job/Printer/Unsupported, omitting any group
// that has no attributes.
func (m *Message) AttrGroups() Groups {
	if m.Groups != nil {
		return m.Groups
	}

	var groups Groups
	for _, g := range []Group{
		{TagOperationGroup, m.Operation},
		{TagJobGroup, m.Job},
		{TagPrinterGroup, m.Printer},
		{TagUnsupportedGroup, m.Unsupported},
		{TagSubscriptionGroup, m.Subscription},
		{TagEventNotificationGroup, m.EventNotification},
		{TagResourceGroup, m.Resource},
		{TagDocumentGroup, m.Document},
		{TagSystemGroup, m.System},
		{TagFuture11Group, m.Future11},
		{TagFuture12Group, m.Future12},
		{TagFuture13Group, m.Future13},
		{TagFuture14Group, m.Future14},
		{TagFuture15Group, m.Future15},
	} {
		if len(g.Attrs) != 0 {
			groups.Add(g)
		}
	}

	return groups
}

// Equal checks that two messages are equal, including attribute order.
func (m Message) Equal(m2 Message) bool {
	if m.Version != m2.Version || m.Code != m2.Code || m.RequestID != m2.RequestID {
		return false
	}
	return m.AttrGroups().Equal(m2.AttrGroups()) && bytes.Equal(m.Data, m2.Data)
}

// Similar checks that two messages are **logically** equal: same header,
// same groups/attributes, independent of group and attribute order.
func (m Message) Similar(m2 Message) bool {
	if m.Version != m2.Version || m.Code != m2.Code || m.RequestID != m2.RequestID {
		return false
	}
	return m.AttrGroups().Similar(m2.AttrGroups()) && bytes.Equal(m.Data, m2.Data)
}

// Reset returns the message to its initial state.
func (m *Message) Reset() { *m = Message{} }

// Encode writes the message to out in wire format.
func (m *Message) Encode(out io.Writer) error {
	me := messageEncoder{out: out}
	return me.encode(m)
}

// EncodeBytes encodes the message to a byte slice.
func (m *Message) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	err := m.Encode(&buf)
	return buf.Bytes(), err
}

// Decode reads a message from in.
func (m *Message) Decode(in io.Reader) error {
	return m.DecodeEx(in, DecoderOptions{})
}

// DecodeEx reads a message from in, with additional DecoderOptions.
func (m *Message) DecodeEx(in io.Reader, opt DecoderOptions) error {
	md := messageDecoder{in: in, opt: opt}
	m.Reset()
	return md.decode(m)
}

// DecodeBytes decodes a message from a byte slice.
func (m *Message) DecodeBytes(data []byte) error {
	return m.Decode(bytes.NewBuffer(data))
}

// DecodeBytesEx decodes a message from a byte slice, with additional
// DecoderOptions.
func (m *Message) DecodeBytesEx(data []byte, opt DecoderOptions) error {
	return m.DecodeEx(bytes.NewBuffer(data), opt)
}

const msgPrintIndent = "    "

// Print pretty-prints the message. The request parameter affects
// interpretation of m.Code: as an Op if true, as a Status if false.
func (m *Message) Print(out io.Writer, request bool) {
	fmt.Fprintf(out, "{\n")
	fmt.Fprintf(out, msgPrintIndent+"REQUEST-ID %d\n", m.RequestID)
	fmt.Fprintf(out, msgPrintIndent+"VERSION %s\n", m.Version)

	if request {
		fmt.Fprintf(out, msgPrintIndent+"OPERATION %s\n", Op(m.Code))
	} else {
		fmt.Fprintf(out, msgPrintIndent+"STATUS %s\n", Status(m.Code))
	}

	for _, grp := range m.AttrGroups() {
		fmt.Fprintf(out, "\n"+msgPrintIndent+"GROUP %s\n", grp.Tag)
		for _, attr := range grp.Attrs {
			m.printAttribute(out, attr, 1)
			fmt.Fprintf(out, "\n")
		}
	}

	fmt.Fprintf(out, "}\n")
}

// printAttribute pretty-prints a single attribute, recursing into nested
// Collection values.
func (m *Message) printAttribute(out io.Writer, attr Attribute, indent int) {
	m.printIndent(out, indent)
	fmt.Fprintf(out, "ATTR %q", attr.Name)

	tag := TagZero
	for _, val := range attr.Values {
		if val.T != tag {
			fmt.Fprintf(out, " %s:", val.T)
			tag = val.T
		}

		if collection, ok := val.V.(Collection); ok {
			fmt.Fprintf(out, " {\n")
			for _, attr2 := range collection {
				m.printAttribute(out, attr2, indent+1)
				fmt.Fprintf(out, "\n")
			}
			m.printIndent(out, indent)
			fmt.Fprintf(out, "}")
		} else {
			fmt.Fprintf(out, " %s", val.V)
		}
	}
}

func (m *Message) printIndent(out io.Writer, indent int) {
	for i := 0; i < indent; i++ {
		fmt.Fprintf(out, msgPrintIndent)
	}
}
