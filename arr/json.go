package arr

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes m as a JSON array when it is a list and as a JSON
// object otherwise, keeping key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	stream := jsonCodec.BorrowStream(nil)
	defer jsonCodec.ReturnStream(stream)

	if m.IsList() {
		stream.WriteArrayStart()
		i := 0
		for _, v := range m.All() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteVal(v)
			i++
		}
		stream.WriteArrayEnd()
	} else {
		stream.WriteObjectStart()
		i := 0
		for k, v := range m.All() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k.String())
			stream.WriteVal(v)
			i++
		}
		stream.WriteObjectEnd()
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON replaces the contents of m with a JSON array or object.
// Object member order is kept, member names are normalised with
// [StringKey], nested arrays and objects become *Map values, integral
// numbers become int and other numbers float64.
func (m *Map) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// DecodeJSON parses a JSON array or object into a Map. See
// [Map.UnmarshalJSON] for the mapping of JSON values.
func DecodeJSON(data []byte) (*Map, error) {
	iter := jsonCodec.BorrowIterator(data)
	defer jsonCodec.ReturnIterator(iter)

	next := iter.WhatIsNext()
	if next != jsoniter.ArrayValue && next != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%w: JSON document is not an array or object", ErrTypeMismatch)
	}
	v := readJSON(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("arr: decode JSON: %w", iter.Error)
	}
	// Only whitespace may follow; WhatIsNext hits io.EOF on an exhausted buffer.
	if iter.Error == nil && (iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF) {
		return nil, fmt.Errorf("arr: decode JSON: unexpected data after top-level value")
	}
	return v.(*Map), nil
}

func readJSON(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		m := NewMap(0)
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			m.Set(StringKey(field), readJSON(it))
			return it.Error == nil
		})
		return m
	case jsoniter.ArrayValue:
		m := NewMap(0)
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			m.Append(readJSON(it))
			return it.Error == nil
		})
		return m
	case jsoniter.NumberValue:
		n := iter.ReadNumber()
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		f, err := n.Float64()
		if err != nil {
			iter.ReportError("readJSON", err.Error())
			return nil
		}
		return f
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	}
	iter.ReportError("readJSON", "unexpected JSON value")
	return nil
}
