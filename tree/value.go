// Package tree maps the AST to and from its canonical tagged form: a
// JSON-safe value built from ordered single-key objects whose keys are
// snake_case node tags. The tagged form is the interchange and
// comparison format; two configurations are semantically equal exactly
// when their trees are equal.
package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is a tree value: nil, bool, int64, float64, string, []Value,
// or *Object.
type Value = any

// Object is a JSON object that keeps its key order. Tagged nodes are
// single-key Objects; plugin, expression, and condition payloads are
// multi-key.
type Object struct {
	keys []string
	m    map[string]Value
}

func NewObject() *Object {
	return &Object{m: map[string]Value{}}
}

// Obj builds a single-key Object, the shape of a tagged node.
func Obj(key string, v Value) *Object {
	o := NewObject()
	o.Set(key, v)
	return o
}

// Set adds or replaces a key. New keys append to the order.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.m[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.m[key] = v
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.m[key]
	return v, ok
}

// Keys reports the key order. The slice is shared; callers must not
// modify it.
func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) Len() int {
	return len(o.keys)
}

// Sole reports the key and value of a single-key Object.
func (o *Object) Sole() (string, Value, bool) {
	if len(o.keys) != 1 {
		return "", nil, false
	}
	k := o.keys[0]
	return k, o.m[k], true
}

func (o *Object) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := marshalValue(o.m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("tree: expected object, got %v", tok)
	}
	if o.m == nil {
		o.m = map[string]Value{}
	}
	return o.decodeMembers(dec)
}

func (o *Object) decodeMembers(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("tree: expected object key, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		o.Set(key, v)
	}
	// consume the closing '}'
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			o := NewObject()
			if err := o.decodeMembers(dec); err != nil {
				return nil, err
			}
			return o, nil
		case '[':
			var arr []Value
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("tree: unexpected delimiter %v", t)
	case json.Number:
		return numberValue(t)
	default:
		return tok, nil
	}
}

func numberValue(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("tree: bad number %q: %w", n.String(), err)
	}
	return f, nil
}
