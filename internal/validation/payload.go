package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	apperrors "template-service-backend/internal/errors"

	"github.com/tidwall/gjson"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	rawMessageType = reflect.TypeOf(json.RawMessage{})
	nullableType   = reflect.TypeOf((*nullable)(nil)).Elem()
)

// decodePayload checks the JSON shape of raw against the Go type dst points
// to and decodes the well-typed parts into dst.
//
// Every declared field is type-checked. Missing fields are reported as
// "Required" unless the field is a pointer, a Nullable or carries a `default`
// tag. Unknown keys are dropped. Values that fail the check are left out of
// dst, so later passes see their zero value; callers use the returned issues
// to suppress duplicate reports below those paths.
func decodePayload(raw []byte, dst any) (apperrors.ValidationErrors, bool) {
	var issues apperrors.ValidationErrors
	if !gjson.ValidBytes(raw) {
		issues.Add("", "Invalid JSON payload")
		return issues, false
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		issues.Add("", fmt.Sprintf("Expected object, received %s", receivedName(root)))
		return issues, false
	}

	cleaned, _ := conform(root, reflect.TypeOf(dst).Elem(), "", false, &issues)
	buf, err := json.Marshal(cleaned)
	if err != nil {
		issues.Add("", err.Error())
		return issues, false
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		issues.Add("", err.Error())
		return issues, false
	}
	return issues, true
}

// conform returns the JSON-ready value for res when it matches t. The bool is
// false when the value must be left out of the decoded result.
func conform(res gjson.Result, t reflect.Type, path string, coerce bool, issues *apperrors.ValidationErrors) (any, bool) {
	if t.Implements(nullableType) {
		if res.Type == gjson.Null {
			return nil, true
		}
		elem := reflect.Zero(t).Interface().(nullable).nullableElem()
		return conform(res, elem, path, coerce, issues)
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if res.Type == gjson.Null {
		issues.Add(path, fmt.Sprintf("Expected %s, received null", expectedName(t)))
		return nil, false
	}

	switch t {
	case timeType:
		if res.Type != gjson.String {
			return mismatch(res, t, path, issues)
		}
		if _, err := time.Parse(time.RFC3339Nano, res.Str); err != nil {
			issues.Add(path, "Invalid date")
			return nil, false
		}
		return res.Str, true
	case rawMessageType:
		return json.RawMessage(res.Raw), true
	}

	switch t.Kind() {
	case reflect.String:
		if res.Type != gjson.String {
			return mismatch(res, t, path, issues)
		}
		return res.Str, true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return conformInt(res, t, path, coerce, issues)

	case reflect.Bool:
		if res.Type != gjson.True && res.Type != gjson.False {
			return mismatch(res, t, path, issues)
		}
		return res.Bool(), true

	case reflect.Slice:
		if !res.IsArray() {
			return mismatch(res, t, path, issues)
		}
		items := res.Array()
		out := make([]any, 0, len(items))
		for i, item := range items {
			v, ok := conform(item, t.Elem(), joinPath(path, strconv.Itoa(i)), false, issues)
			if !ok {
				// keep indexes stable for the constraint pass
				if elemKind(t.Elem()) != reflect.Struct {
					return nil, false
				}
				v = map[string]any{}
			}
			out = append(out, v)
		}
		return out, true

	case reflect.Struct:
		if !res.IsObject() {
			return mismatch(res, t, path, issues)
		}
		present := make(map[string]gjson.Result)
		res.ForEach(func(key, value gjson.Result) bool {
			present[key.Str] = value
			return true
		})
		out := make(map[string]any, len(present))
		conformFields(present, t, path, out, issues)
		return out, true
	}

	issues.Add(path, fmt.Sprintf("Unsupported field type %s", t))
	return nil, false
}

func conformFields(present map[string]gjson.Result, t reflect.Type, path string, out map[string]any, issues *apperrors.ValidationErrors) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonFieldName(f)
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			// embedded structs flatten the same way encoding/json does
			conformFields(present, f.Type, path, out, issues)
			continue
		}
		if name == "" || name == "-" {
			continue
		}

		fieldPath := joinPath(path, name)
		value, ok := present[name]
		if !ok {
			if def, hasDefault := f.Tag.Lookup("default"); hasDefault {
				out[name] = parseDefault(def, f.Type)
				continue
			}
			if isOptional(f.Type) {
				continue
			}
			issues.Add(fieldPath, "Required")
			continue
		}

		coerce := hasPayloadOption(f, "coerce")
		if v, ok := conform(value, f.Type, fieldPath, coerce, issues); ok {
			out[name] = v
		}
	}
}

func conformInt(res gjson.Result, t reflect.Type, path string, coerce bool, issues *apperrors.ValidationErrors) (any, bool) {
	literal := res.Raw
	switch {
	case res.Type == gjson.Number:
	case coerce && res.Type == gjson.String:
		literal = strings.TrimSpace(res.Str)
		if _, err := strconv.ParseFloat(literal, 64); err != nil {
			issues.Add(path, "Expected number, received nan")
			return nil, false
		}
	default:
		return mismatch(res, t, path, issues)
	}

	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(literal, 64)
		switch {
		case ferr == nil && f == math.Trunc(f) && math.Abs(f) <= float64(1<<53):
			n = int64(f)
		case ferr == nil && f == math.Trunc(f):
			issues.Add(path, "Number must be a safe integer")
			return nil, false
		default:
			issues.Add(path, "Expected integer, received float")
			return nil, false
		}
	}
	if reflect.Zero(t).OverflowInt(n) {
		issues.Add(path, "Number must be a safe integer")
		return nil, false
	}
	return json.Number(strconv.FormatInt(n, 10)), true
}

func mismatch(res gjson.Result, t reflect.Type, path string, issues *apperrors.ValidationErrors) (any, bool) {
	issues.Add(path, fmt.Sprintf("Expected %s, received %s", expectedName(t), receivedName(res)))
	return nil, false
}

func isOptional(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr || t.Implements(nullableType)
}

func elemKind(t reflect.Type) reflect.Kind {
	if t.Kind() == reflect.Ptr {
		return t.Elem().Kind()
	}
	return t.Kind()
}

func parseDefault(def string, t reflect.Type) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		if b, err := strconv.ParseBool(def); err == nil {
			return b
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if _, err := strconv.ParseInt(def, 10, 64); err == nil {
			return json.Number(def)
		}
	case reflect.Struct:
		// a struct default is built from the defaults of its own fields
		out := make(map[string]any)
		conformFields(nil, t, "", out, &apperrors.ValidationErrors{})
		return out
	}
	return def
}

func hasPayloadOption(f reflect.StructField, option string) bool {
	for _, opt := range strings.Split(f.Tag.Get("payload"), ",") {
		if strings.TrimSpace(opt) == option {
			return true
		}
	}
	return false
}

func jsonFieldName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		if f.Anonymous {
			return ""
		}
		return f.Name
	}
	return strings.SplitN(tag, ",", 2)[0]
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func expectedName(t reflect.Type) string {
	if t == timeType {
		return "date"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice:
		return "array"
	default:
		return "object"
	}
}

func receivedName(res gjson.Result) string {
	switch res.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if res.IsArray() {
			return "array"
		}
		return "object"
	}
}
