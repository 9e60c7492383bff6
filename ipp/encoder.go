// IPP message encoder.

package ipp

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// messageEncoder encodes a Message to the binary wire format.
type messageEncoder struct {
	out io.Writer
}

// encode writes the message.
func (me *messageEncoder) encode(m *Message) error {
	// Wire format:
	//
	//   2 bytes:  Version
	//   2 bytes:  Code (Operation or Status)
	//   4 bytes:  RequestID
	//   variable: attribute groups
	//   1 byte:   TagEnd
	//   variable: Data, if any

	var err error
	err = me.encodeU16(uint16(m.Version))
	if err == nil {
		err = me.encodeU16(uint16(m.Code))
	}
	if err == nil {
		err = me.encodeU32(m.RequestID)
	}

	for _, grp := range m.AttrGroups() {
		err = me.encodeTag(grp.Tag)
		if err == nil {
			for _, attr := range grp.Attrs {
				if attr.Name == "" {
					err = errors.New("attribute without name")
				} else {
					err = me.encodeAttr(attr)
				}
				if err != nil {
					break
				}
			}
		}

		if err != nil {
			break
		}
	}

	if err == nil {
		err = me.encodeTag(TagEnd)
	}

	if err == nil && len(m.Data) != 0 {
		err = me.write(m.Data)
	}

	return err
}

// encodeAttr encodes a single attribute, including its additional values
// (each written as a value-only entry with an empty name, per the wire
// convention).
func (me *messageEncoder) encodeAttr(attr Attribute) error {
	if len(attr.Values) == 0 {
		return errors.New("attribute without value")
	}

	name := attr.Name
	for _, val := range attr.Values {
		err := me.encodeTag(val.T)
		if err != nil {
			return err
		}

		err = me.encodeName(name)
		if err != nil {
			return err
		}

		err = me.encodeValue(val.T, val.V)
		if err != nil {
			return err
		}

		name = ""
	}

	return nil
}

func (me *messageEncoder) encodeU8(v uint8) error {
	return me.write([]byte{v})
}

func (me *messageEncoder) encodeU16(v uint16) error {
	return me.write([]byte{byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeU32(v uint32) error {
	return me.write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeTag(tag Tag) error {
	return me.encodeU8(byte(tag))
}

func (me *messageEncoder) encodeName(name string) error {
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("attribute name exceeds %d bytes", math.MaxUint16)
	}

	err := me.encodeU16(uint16(len(name)))
	if err == nil {
		err = me.write([]byte(name))
	}

	return err
}

// encodeValue encodes a single attribute value, recursing into
// encodeCollection for a nested Collection - a collection member may
// itself carry a Collection value, and that nested BegCollection/
// MemberAttrName/EndCollection run is emitted the same way as the
// top-level one.
func (me *messageEncoder) encodeValue(tag Tag, v Value) error {
	tagType := tag.Type()
	switch tagType {
	case TypeInvalid:
		return fmt.Errorf("tag %s cannot be used for a value", tag)
	case TypeVoid:
		v = Void{}
	default:
		if tagType != v.Type() {
			return fmt.Errorf("tag %s: %s value required, %s present",
				tag, tagType, v.Type())
		}
	}

	data, err := v.encode()
	if err != nil {
		return err
	}

	if len(data) > math.MaxUint16 {
		return fmt.Errorf("attribute value exceeds %d bytes", math.MaxUint16)
	}

	err = me.encodeU16(uint16(len(data)))
	if err == nil {
		err = me.write(data)
	}
	if err != nil {
		return err
	}

	if collection, ok := v.(Collection); ok {
		return me.encodeCollection(collection)
	}

	return nil
}

// encodeCollection encodes a Collection's members as a MemberAttrName/value
// run terminated by EndCollection, recursing for any member whose own
// value is itself a Collection.
func (me *messageEncoder) encodeCollection(collection Collection) error {
	for _, attr := range collection {
		if attr.Name == "" {
			return errors.New("collection member without name")
		}

		err := me.encodeAttr(MakeAttr("", TagMemberName, String(attr.Name)))
		if err == nil {
			err = me.encodeAttr(Attribute{Name: "", Values: attr.Values})
		}

		if err != nil {
			return err
		}
	}

	return me.encodeAttr(MakeAttr("", TagEndCollection, Void{}))
}

func (me *messageEncoder) write(data []byte) error {
	for len(data) > 0 {
		n, err := me.out.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}

	return nil
}
