package condition

import (
	"reflect"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/flowgraph/workflowcore/graph"
)

// JSONValue wraps a gjson.Result so PropertyPathResolver can
// distinguish "structured JSON value" targets from arbitrary Go
// values, per the spec's two-backend resolution rule.
type JSONValue struct {
	Result gjson.Result
}

// ParseJSON parses raw JSON text into a JSONValue target for
// PropertyPathResolver.Resolve. Returns a graph.Error of kind
// graph.Parse on syntactically invalid input.
func ParseJSON(raw string) (JSONValue, error) {
	if !gjson.Valid(raw) {
		return JSONValue{}, &graph.Error{Kind: graph.Parse, Message: "invalid JSON"}
	}
	return JSONValue{Result: gjson.Parse(raw)}, nil
}

// PropertyPathResolver resolves a dot-separated path against a
// target, using the structured-JSON backend when the target is a
// JSONValue and the reflective object/map backend otherwise.
type PropertyPathResolver struct{}

// Resolve walks path against target. An empty path resolves to target
// itself. ok is false when any segment cannot be traversed; err then
// describes why with a graph.Error of kind graph.Resolution.
func (PropertyPathResolver) Resolve(target any, path string) (ok bool, value any, err error) {
	if path == "" {
		return true, target, nil
	}
	segments := strings.Split(path, ".")

	if j, isJSON := target.(JSONValue); isJSON {
		return resolveJSON(j.Result, segments)
	}
	return resolveObject(target, segments)
}

func resolveJSON(cur gjson.Result, segments []string) (bool, any, error) {
	for _, seg := range segments {
		if !cur.IsObject() {
			return false, nil, resolutionError(seg, "value is not a JSON object")
		}
		next := cur.Get(seg)
		if !next.Exists() {
			next = caseInsensitiveMember(cur, seg)
			if !next.Exists() {
				return false, nil, resolutionError(seg, "member not found")
			}
		}
		cur = next
	}
	return true, convertJSON(cur), nil
}

func caseInsensitiveMember(obj gjson.Result, name string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(key, value gjson.Result) bool {
		if strings.EqualFold(key.String(), name) {
			found = value
			return false
		}
		return true
	})
	return found
}

// convertJSON converts a terminal gjson.Result per the spec: object or
// array becomes an opaque JSONValue (so a caller can keep traversing
// or re-resolve), string stays a string, number becomes float64,
// bool/null pass through.
func convertJSON(v gjson.Result) any {
	switch v.Type {
	case gjson.String:
		return v.String()
	case gjson.Number:
		return v.Float()
	case gjson.True, gjson.False:
		return v.Bool()
	case gjson.Null:
		return nil
	default:
		if v.IsObject() || v.IsArray() {
			return JSONValue{Result: v}
		}
		return v.Value()
	}
}

func resolveObject(target any, segments []string) (bool, any, error) {
	cur := reflect.ValueOf(target)
	for _, seg := range segments {
		if !cur.IsValid() {
			return false, nil, resolutionError(seg, "value is null")
		}
		next, err := fieldOrKey(cur, seg)
		if err != nil {
			return false, nil, err
		}
		cur = next
	}
	if !cur.IsValid() {
		return true, nil, nil
	}
	return true, cur.Interface(), nil
}

func fieldOrKey(v reflect.Value, name string) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, resolutionError(name, "intermediate value is null")
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, resolutionError(name, "map key type is not a string")
		}
		for _, key := range v.MapKeys() {
			if strings.EqualFold(key.String(), name) {
				return v.MapIndex(key), nil
			}
		}
		return reflect.Value{}, resolutionError(name, "key not found")
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if strings.EqualFold(field.Name, name) {
				return v.Field(i), nil
			}
		}
		return reflect.Value{}, resolutionError(name, "property not found")
	default:
		return reflect.Value{}, resolutionError(name, "value has no properties")
	}
}

func resolutionError(segment, reason string) error {
	return &graph.Error{Kind: graph.Resolution, Message: "segment " + segment + ": " + reason}
}

// resolve narrows value by path for a single rule's own use. A rule is
// boolean-only with no side-band error channel, so a resolution
// failure (or a non-existent path) collapses to not-ok rather than
// propagating the graph.Error PropertyPathResolver would otherwise
// return.
func resolve(value any, path string) (any, bool) {
	var resolver PropertyPathResolver
	ok, v, err := resolver.Resolve(value, path)
	if err != nil || !ok {
		return nil, false
	}
	return v, true
}
