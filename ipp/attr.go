// Message attributes.

package ipp

import "fmt"

// Attribute represents a single attribute: a name and an ordered sequence
// of (tag, value) pairs. A scalar attribute carries exactly one pair; an
// "additional values" attribute (the wire's empty-name repetition
// convention, unpacked into Values by the group decoder) carries several,
// all sharing Name.
type Attribute struct {
	Name   string // Attribute name
	Values Values // Slice of values
}

// Attributes represents a slice of attributes, in wire order.
type Attributes []Attribute

// Add appends attr to attrs.
func (attrs *Attributes) Add(attr Attribute) {
	*attrs = append(*attrs, attr)
}

// AddValue adds value to the attribute's Values.
func (a *Attribute) AddValue(tag Tag, val Value) {
	a.Values.Add(tag, val)
}

// MakeAttribute makes a single-valued Attribute from a name, tag and value.
func MakeAttribute(name string, tag Tag, value Value) Attribute {
	attr := Attribute{Name: name}
	attr.AddValue(tag, value)
	return attr
}

// MakeAttr makes an Attribute from a name, a tag shared by all values, and
// one or more values - the common case of a scalar attribute plus the
// "1setOf" case of several values under the same tag.
func MakeAttr(name string, tag Tag, values ...Value) Attribute {
	attr := Attribute{Name: name}
	for _, v := range values {
		attr.AddValue(tag, v)
	}
	return attr
}

// MakeAttrCollection makes a single-valued Attribute whose value is a
// Collection built from members.
func MakeAttrCollection(name string, members ...Attribute) Attribute {
	return MakeAttribute(name, TagBeginCollection, Collection(members))
}

// Equal checks that attrs and attrs2 are equal, including attribute order.
// Unlike Similar, Equal distinguishes a nil Attributes from a non-nil but
// empty one.
func (attrs Attributes) Equal(attrs2 Attributes) bool {
	if (attrs == nil) != (attrs2 == nil) {
		return false
	}
	if len(attrs) != len(attrs2) {
		return false
	}

	for i, a := range attrs {
		a2 := attrs2[i]
		if a.Name != a2.Name || !a.Values.Equal(a2.Values) {
			return false
		}
	}

	return true
}

// Similar checks that attrs and attrs2 are **logically** equal: the same
// set of (name, values), independent of attribute order, with each
// attribute's values compared by Values.Similar. Values within an
// attribute may not be reordered - "additional values" are ordered data,
// not a set.
func (attrs Attributes) Similar(attrs2 Attributes) bool {
	if len(attrs) != len(attrs2) {
		return false
	}

	used := make([]bool, len(attrs2))

next:
	for _, a := range attrs {
		for i, a2 := range attrs2 {
			if used[i] || a.Name != a2.Name {
				continue
			}
			if a.Values.Similar(a2.Values) {
				used[i] = true
				continue next
			}
		}
		return false
	}

	return true
}

// Equal checks that a and a2 have the same name and equal values.
func (a Attribute) Equal(a2 Attribute) bool {
	return a.Name == a2.Name && a.Values.Equal(a2.Values)
}

// Get returns the first attribute named name and reports whether one was
// found. Lookup is linear over attrs - attribute groups are small enough
// that a parallel hash index buys nothing a caller can't already get from
// a short scan.
func (attrs Attributes) Get(name string) (Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Clone makes a shallow copy of attrs: the Attributes slice header is
// copied, but each Attribute's Values slice is shared with the original.
func (attrs Attributes) Clone() Attributes {
	if attrs == nil {
		return nil
	}
	clone := make(Attributes, len(attrs))
	copy(clone, attrs)
	return clone
}

// DeepCopy makes a deep copy of attrs: every Attribute's Values slice is
// copied too, so mutating the copy never affects the original.
func (attrs Attributes) DeepCopy() Attributes {
	if attrs == nil {
		return nil
	}
	clone := make(Attributes, len(attrs))
	for i, a := range attrs {
		clone[i] = Attribute{Name: a.Name, Values: a.Values.DeepCopy()}
	}
	return clone
}

// unpack decodes a single value of the given tag and appends it to the
// Attribute's Values. It panics if tag is a delimiter - callers must not
// route a group tag through here, only value tags that follow a name in
// the wire format.
func (a *Attribute) unpack(tag Tag, data []byte) error {
	if tag.IsDelimiter() {
		panic("ipp: Attribute.unpack called with a delimiter tag")
	}

	v, err := decodeValue(tag, data)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	a.AddValue(tag, v)
	return nil
}

// decodeValue decodes a single attribute value from its wire tag and raw
// bytes. This is the one dispatch table for value decoding in this
// package - Tag.Type() routes a tag to the Go type that owns both
// encode() and decode(), so there is exactly one place per value kind that
// can drift from the wire format, not two.
func decodeValue(tag Tag, data []byte) (Value, error) {
	if (tag == TagBeginCollection || tag == TagEndCollection) && len(data) != 0 {
		return nil, protocolErrorf("%s: non-empty value, %d bytes", tag, len(data))
	}

	switch tag.Type() {
	case TypeInteger:
		return Integer(0).decode(data)
	case TypeBoolean:
		return Boolean(false).decode(data)
	case TypeVoid:
		return Void{}.decode(data)
	case TypeString:
		return String("").decode(data)
	case TypeDateTime:
		return Time{}.decode(data)
	case TypeResolution:
		return Resolution{}.decode(data)
	case TypeRange:
		return Range{}.decode(data)
	case TypeTextWithLang:
		return TextWithLang{}.decode(data)
	case TypeBinary:
		return Binary(nil).decode(data)
	case TypeCollection:
		// BegCollection carries no payload of its own; the decoder
		// replaces this placeholder with the decoded Collection once
		// it has read the MemberAttrName/EndCollection run that
		// follows.
		return Collection{}, nil
	default:
		return nil, protocolErrorf("unable to decode value of tag %s", tag)
	}
}
