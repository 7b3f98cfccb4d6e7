package tabconv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a [Value].
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "a string"
	case KindNumber:
		return "a number"
	case KindBool:
		return "a boolean"
	case KindNull:
		return "null"
	case KindArray:
		return "an array"
	case KindObject:
		return "an object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one key-value member of a JSON object, kept in source order.
type Field struct {
	Key   string
	Value Value
}

// Value is a decoded JSON value. Exactly the member matching Kind is set.
type Value struct {
	Kind   Kind
	Str    string
	Num    json.Number
	Bool   bool
	Items  []Value
	Fields []Field
}

// DecodeJSONValue decodes exactly one JSON value from data.
func DecodeJSONValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	switch tok := tok.(type) {
	case string:
		return Value{Kind: KindString, Str: tok}, nil
	case json.Number:
		return Value{Kind: KindNumber, Num: tok}, nil
	case bool:
		return Value{Kind: KindBool, Bool: tok}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	case json.Delim:
		switch tok {
		case '[':
			v := Value{Kind: KindArray, Items: []Value{}}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				v.Items = append(v.Items, item)
			}
			_, err := dec.Token()
			return v, err
		case '{':
			v := Value{Kind: KindObject, Fields: []Field{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				v.Fields = append(v.Fields, Field{Key: key, Value: item})
			}
			_, err := dec.Token()
			return v, err
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// String flattens the value into a cell string. Strings are returned as-is,
// numbers in canonical decimal form, booleans as "true" or "false", null as
// "null", and arrays and objects as compact JSON.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return canonicalNumber(v.Num)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	case KindArray, KindObject:
		var buf bytes.Buffer
		v.appendJSON(&buf)
		return buf.String()
	default:
		return ""
	}
}

// Row converts an object value into a Row of flattened cells. It reports
// false for any other kind.
func (v Value) Row() (Row, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	row := make(Row, len(v.Fields))
	for _, f := range v.Fields {
		row[f.Key] = f.Value.String()
	}
	return row, true
}

func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	// Integers beyond int64 keep their literal digits.
	if !strings.ContainsAny(n.String(), ".eE") {
		return n.String()
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v Value) appendJSON(buf *bytes.Buffer) {
	switch v.Kind {
	case KindString:
		appendJSONString(buf, v.Str)
	case KindNumber:
		buf.WriteString(v.Num.String())
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case KindNull:
		buf.WriteString("null")
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			item.appendJSON(buf)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendJSONString(buf, f.Key)
			buf.WriteByte(':')
			f.Value.appendJSON(buf)
		}
		buf.WriteByte('}')
	}
}

func appendJSONString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
}
