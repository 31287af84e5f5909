package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Marshal encodes a tree value as JSON, preserving object key order.
// Floats always carry a fraction or an exponent, so an integral float
// reloads as a float.
func Marshal(v Value) ([]byte, error) {
	return marshalValue(v)
}

// MarshalIndent is Marshal with indented output.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	d, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON into a tree value. Objects decode to *Object
// with their key order intact; integral numbers decode to int64,
// others to float64.
func Unmarshal(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func marshalValue(v Value) ([]byte, error) {
	switch x := v.(type) {
	case *Object:
		return x.MarshalJSON()
	case []Value:
		buf := bytes.NewBuffer(nil)
		buf.WriteByte('[')
		for i, el := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := marshalValue(el)
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case float64:
		return formatFloat(x)
	default:
		return json.Marshal(v)
	}
}

// formatFloat renders f so that numberValue reads it back as a float:
// an integral float gets a ".0" suffix.
func formatFloat(f float64) ([]byte, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("tree: cannot encode %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

// MarshalYAML encodes a tree value as YAML, preserving key order.
func MarshalYAML(v Value) ([]byte, error) {
	return yaml.Marshal(toYAML(v))
}

// UnmarshalYAML decodes YAML into a tree value.
func UnmarshalYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(raw)
}

func toYAML(v Value) any {
	switch x := v.(type) {
	case *Object:
		ms := make(yaml.MapSlice, 0, x.Len())
		for _, k := range x.Keys() {
			pv, _ := x.Get(k)
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAML(pv)})
		}
		return ms
	case []Value:
		out := make([]any, 0, len(x))
		for _, el := range x {
			out = append(out, toYAML(el))
		}
		return out
	case float64:
		return yamlFloat(x)
	default:
		return v
	}
}

// yamlFloat keeps the float kind of an integral float through the
// YAML encoder, which would otherwise emit it as an integer scalar.
type yamlFloat float64

func (f yamlFloat) MarshalYAML() ([]byte, error) {
	return formatFloat(float64(f))
}

func fromYAML(v any) (Value, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		o := NewObject()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				return nil, shapeErr("", "non-string key %v in yaml object", item.Key)
			}
			pv, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			o.Set(k, pv)
		}
		return o, nil
	case []any:
		out := make([]Value, 0, len(x))
		for _, el := range x {
			pv, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			out = append(out, pv)
		}
		return out, nil
	case int:
		return int64(x), nil
	case uint64:
		return int64(x), nil
	default:
		return v, nil
	}
}
