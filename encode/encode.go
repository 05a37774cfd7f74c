package encode

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"tern/object"
)

// ToNative converts a runtime value into a plain Go value: nil, bool,
// int64, float64, string or []any. Callables have no native form.
func ToNative(obj object.Object) (any, error) {
	switch obj := obj.(type) {
	case *object.Nil:
		return nil, nil
	case *object.Boolean:
		return obj.Value, nil
	case *object.Integer:
		return obj.Value, nil
	case *object.Float:
		return obj.Value, nil
	case *object.String:
		return obj.Value, nil
	case *object.Array:
		items := make([]any, 0, obj.Len())
		for _, item := range obj.Items() {
			native, err := ToNative(item)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("cannot encode %s as a native value", obj.Type())
	}
}

// FromNative converts a plain Go value into a runtime value.
func FromNative(v any) (object.Object, error) {
	switch v := v.(type) {
	case nil:
		return object.NIL, nil
	case bool:
		return object.BoolFrom(v), nil
	case int:
		return &object.Integer{Value: int64(v)}, nil
	case int32:
		return &object.Integer{Value: int64(v)}, nil
	case int64:
		return &object.Integer{Value: v}, nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d does not fit the runtime number range", v)
		}
		return &object.Integer{Value: int64(v)}, nil
	case float32:
		return &object.Float{Value: float64(v)}, nil
	case float64:
		return &object.Float{Value: v}, nil
	case string:
		return &object.String{Value: v}, nil
	case []any:
		elements := make([]object.Object, 0, len(v))
		for _, item := range v {
			converted, err := FromNative(item)
			if err != nil {
				return nil, err
			}
			elements = append(elements, converted)
		}
		return object.NewArray(elements...), nil
	default:
		return nil, fmt.Errorf("cannot decode %T as a runtime value", v)
	}
}

// DecodeYAML parses a YAML document into a runtime value.
func DecodeYAML(data []byte) (object.Object, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid yaml document: %w", err)
	}
	return FromNative(v)
}

// EncodeYAML renders a runtime value as a YAML document.
func EncodeYAML(obj object.Object) ([]byte, error) {
	native, err := ToNative(obj)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(native)
}
