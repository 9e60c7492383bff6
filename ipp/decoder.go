// IPP message decoder.

package ipp

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"
)

// DecoderOptions controls optional messageDecoder behavior.
type DecoderOptions struct {
	// MaxDataSize caps how many trailing bytes (the document payload
	// following end-of-attributes-tag) Decode will read into
	// Message.Data. Zero means unlimited - the whole remainder of the
	// stream is read, which is appropriate for decoding a response
	// (no trailing data expected) but a caller decoding a Send-Document
	// request from an untrusted source should set a bound.
	MaxDataSize int64
}

// messageDecoder decodes a Message from the binary wire format.
type messageDecoder struct {
	in  io.Reader
	opt DecoderOptions
	off int
	cnt int
}

// decode reads the message.
func (md *messageDecoder) decode(m *Message) error {
	// Wire format:
	//
	//   2 bytes:  Version
	//   2 bytes:  operation-id or status-code
	//   4 bytes:  RequestID
	//   variable: attribute groups
	//   1 byte:   end-of-attributes-tag
	//   variable: document data, if any

	var err error
	m.Version, err = md.decodeVersion()
	if err == nil {
		m.Code, err = md.decodeCode()
	}
	if err == nil {
		m.RequestID, err = md.decodeU32()
	}

	done := false
	var groups Groups
	var group *Attributes
	var attr Attribute
	var prev *Attribute

	for err == nil && !done {
		var tag Tag
		tag, err = md.decodeTag()
		if err != nil {
			break
		}

		if tag.IsDelimiter() {
			prev = nil
		}

		switch {
		case tag == TagEnd:
			done = true

		case tag == TagOperationGroup, tag == TagJobGroup,
			tag == TagPrinterGroup, tag == TagUnsupportedGroup:
			groups.Add(Group{Tag: tag})
			group = &groups[len(groups)-1].Attrs

		case tag.IsDelimiter():
			// Tags 0x01-0x05 are the only recognized delimiters; every
			// other byte below 0x10 (TagZero and the RFC 8011 group
			// tags this toolkit doesn't target) is a protocol error.
			err = protocolErrorf("unknown delimiter tag %s", tag)

		case tag == TagMemberName || tag == TagEndCollection:
			err = protocolErrorf("unexpected tag %s", tag)

		default:
			attr, err = md.decodeAttribute(tag)
			if err == nil && tag == TagBeginCollection {
				attr.Values[0].V, err = md.decodeCollection()
			}

			switch {
			case err != nil:
			case attr.Name == "":
				if prev != nil {
					prev.Values.Add(attr.Values[0].T, attr.Values[0].V)
				} else {
					err = protocolErrorf("additional value without preceding attribute")
				}
			case group != nil:
				group.Add(attr)
				prev = &(*group)[len(*group)-1]
			default:
				err = protocolErrorf("attribute without a group")
			}
		}
	}

	if err == nil {
		m.Groups = groups
		m.populateConvenienceFields()
		m.Data, err = md.decodeData()
	}

	if err != nil {
		err = fmt.Errorf("%w at 0x%x", err, md.off)
	}

	return err
}

// decodeData reads whatever follows end-of-attributes-tag.
func (md *messageDecoder) decodeData() ([]byte, error) {
	r := io.Reader(md.in)
	if md.opt.MaxDataSize > 0 {
		r = io.LimitReader(md.in, md.opt.MaxDataSize)
	}

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}

// decodeCollection decodes a Collection body: a run of MemberAttrName/value
// pairs terminated by EndCollection, recursing for a member whose own value
// is itself a Collection.
func (md *messageDecoder) decodeCollection() (Collection, error) {
	collection := make(Collection, 0)

	for {
		tag, err := md.decodeTag()
		if err != nil {
			return nil, err
		}

		if tag != TagEndCollection && tag != TagMemberName {
			return nil, protocolErrorf(
				"collection: expected %s or %s, got %s",
				TagMemberName, TagEndCollection, tag)
		}

		attrName, err := md.decodeAttribute(tag)
		if err != nil {
			return nil, err
		}

		if tag == TagEndCollection {
			return collection, nil
		}

		tag, err = md.decodeTag()
		if err != nil {
			return nil, err
		}

		if tag.IsDelimiter() || tag == TagEndCollection || tag == TagMemberName {
			return nil, protocolErrorf("collection: unexpected %s", tag)
		}

		attr, err := md.decodeAttribute(tag)
		if err != nil {
			return nil, err
		}

		attr.Name = string(attrName.Values[0].V.(String))
		if tag == TagBeginCollection {
			attr.Values[0].V, err = md.decodeCollection()
			if err != nil {
				return nil, err
			}
		}

		collection = append(collection, attr)
	}
}

func (md *messageDecoder) decodeTag() (Tag, error) {
	t, err := md.decodeU8()
	return Tag(t), err
}

func (md *messageDecoder) decodeVersion() (Version, error) {
	code, err := md.decodeU16()
	return Version(code), err
}

func (md *messageDecoder) decodeCode() (Code, error) {
	code, err := md.decodeU16()
	return Code(code), err
}

// decodeAttribute decodes a single (tag, name, value) wire entry. Unknown
// value tags (any byte >= 0x10 this package doesn't specifically assign a
// meaning to) are not rejected: Tag.Type falls back to TypeBinary for
// them, so the value is preserved verbatim rather than the message being
// treated as malformed.
func (md *messageDecoder) decodeAttribute(tag Tag) (Attribute, error) {
	var attr Attribute
	var value []byte
	var err error

	attr.Name, err = md.decodeString()
	if err != nil {
		return Attribute{}, err
	}

	value, err = md.decodeBytes()
	if err != nil {
		return Attribute{}, err
	}

	v, err := decodeValue(tag, value)
	if err != nil {
		return Attribute{}, fmt.Errorf("%s: %w", tag, err)
	}

	attr.AddValue(tag, v)
	return attr, nil
}

func (md *messageDecoder) decodeU8() (uint8, error) {
	buf := make([]byte, 1)
	err := md.read(buf)
	return buf[0], err
}

func (md *messageDecoder) decodeU16() (uint16, error) {
	buf := make([]byte, 2)
	err := md.read(buf)
	return binary.BigEndian.Uint16(buf), err
}

func (md *messageDecoder) decodeU32() (uint32, error) {
	buf := make([]byte, 4)
	err := md.read(buf)
	return binary.BigEndian.Uint32(buf), err
}

func (md *messageDecoder) decodeBytes() ([]byte, error) {
	length, err := md.decodeU16()
	if err != nil {
		return nil, err
	}

	data := make([]byte, length)
	err = md.read(data)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (md *messageDecoder) decodeString() (string, error) {
	data, err := md.decodeBytes()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (md *messageDecoder) read(data []byte) error {
	md.off = md.cnt

	for len(data) > 0 {
		n, err := md.in.Read(data)
		if err != nil {
			md.off = md.cnt
			return err
		}

		md.cnt += n
		data = data[n:]
	}

	return nil
}
