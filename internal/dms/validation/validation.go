// Package validation checks form input against declarative schemas expressed as
// `binding` struct tags, the same tags gin uses for request binding.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors maps a json field name to a human-readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages holds the schema's messages keyed by "field.tag", falling back to "field".
type Messages map[string]string

func (m Messages) lookup(field, tag, param string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "email":
		return "Invalid email address"
	}
	return field + " is invalid"
}

// Defaulter is implemented by requests that fill defaults for absent fields.
type Defaulter interface {
	ApplyDefaults(input map[string]any)
}

// Validator wraps a configured go-playground validator.
type Validator struct {
	v *validator.Validate
}

// New returns a validator reading `binding` tags and reporting json names.
func New() *Validator {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// RegisterStructRule adds a rule evaluated after the field checks of types.
func (v *Validator) RegisterStructRule(fn validator.StructLevelFunc, types ...interface{}) {
	v.v.RegisterStructValidation(fn, types...)
}

// Bind decodes input into req, applies defaults and validates it. Each field is
// decoded on its own so a type mismatch does not hide errors on other fields.
// All failing fields are reported together.
func (v *Validator) Bind(input map[string]any, req any, msgs Messages) FieldErrors {
	rv := reflect.ValueOf(req)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return FieldErrors{"_": "malformed input"}
	}
	decodeErrs := decodeFields(input, rv.Elem(), msgs)
	if d, ok := req.(Defaulter); ok {
		d.ApplyDefaults(input)
	}
	errs := v.Struct(req, msgs)
	if len(decodeErrs) == 0 {
		return errs
	}
	if errs == nil {
		errs = FieldErrors{}
	}
	// 类型错误优先于零值触发的规则错误
	for field, msg := range decodeErrs {
		errs[field] = msg
	}
	return errs
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decodeFields sets every input key that names a field of dst and collects
// per-field decode failures.
func decodeFields(input map[string]any, dst reflect.Value, msgs Messages) FieldErrors {
	var errs FieldErrors
	for name, index := range jsonFields(dst.Type()) {
		val, ok := input[name]
		if !ok {
			continue
		}
		raw, err := json.Marshal(val)
		if err != nil {
			errs = addError(errs, name, msgs.decodeMessage(name, "value"))
			continue
		}
		field := dst.FieldByIndex(index)
		target := reflect.New(field.Type())
		if err := json.Unmarshal(raw, target.Interface()); err != nil {
			errs = addError(errs, name, msgs.decodeMessage(name, typeName(field.Type(), err)))
			continue
		}
		field.Set(target.Elem())
	}
	return errs
}

// jsonFields maps json names to field indexes, following embedded structs.
func jsonFields(t reflect.Type) map[string][]int {
	out := map[string][]int{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			for sub, idx := range jsonFields(f.Type) {
				if _, taken := out[sub]; !taken {
					out[sub] = append([]int{i}, idx...)
				}
			}
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = []int{i}
	}
	return out
}

func typeName(t reflect.Type, err error) string {
	if t == decimalType {
		return "number"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Type.Kind().String()
	}
	return t.Kind().String()
}

func addError(errs FieldErrors, field, msg string) FieldErrors {
	if errs == nil {
		errs = FieldErrors{}
	}
	errs[field] = msg
	return errs
}

// decodeMessage 类型不匹配的提示，可用 "field.type" 覆盖
func (m Messages) decodeMessage(field, kind string) string {
	if msg, ok := m[field+".type"]; ok {
		return msg
	}
	return fmt.Sprintf("%s must be a %s", field, kind)
}

// Struct validates an already decoded request.
func (v *Validator) Struct(req any, msgs Messages) FieldErrors {
	err := v.v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = msgs.lookup(field, fe.Tag(), fe.Param())
	}
	return out
}
