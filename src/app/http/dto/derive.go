package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-playground/validator/v10"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// NoExtras is the Extra type of an update that adds no fields.
type NoExtras struct{}

// Deriver builds the update shape of a create request: every field of Base
// becomes optional, the omitted fields are dropped, and the fields of Extra
// are added. Present fields keep the exact rules declared on Base or Extra.
type Deriver[Base, Extra any] struct {
	fields map[string]derivedField
	names  []string
}

type derivedField struct {
	extra  bool
	index  int
	goName string
}

// DeriveUpdate declares an update shape. It panics when an omitted name is
// not a field of Base or when Extra redeclares a Base field, so mistakes
// surface at package init.
func DeriveUpdate[Base, Extra any](omit ...string) *Deriver[Base, Extra] {
	base := structFields(reflect.TypeFor[Base]())
	extra := structFields(reflect.TypeFor[Extra]())

	d := &Deriver[Base, Extra]{fields: make(map[string]derivedField)}
	for name, f := range base {
		d.fields[name] = f
	}
	for _, name := range omit {
		if _, ok := d.fields[name]; !ok {
			panic(fmt.Sprintf("dto: cannot omit %q: not a field of %s", name, reflect.TypeFor[Base]()))
		}
		delete(d.fields, name)
	}
	for name, f := range extra {
		if _, ok := base[name]; ok {
			panic(fmt.Sprintf("dto: %s redeclares field %q of %s", reflect.TypeFor[Extra](), name, reflect.TypeFor[Base]()))
		}
		f.extra = true
		d.fields[name] = f
	}

	for name := range d.fields {
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)
	return d
}

func structFields(t reflect.Type) map[string]derivedField {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("dto: %s is not a struct", t))
	}
	out := make(map[string]derivedField, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if name := fieldName(f); name != "" {
			out[name] = derivedField{index: i, goName: f.Name}
		}
	}
	return out
}

// Fields returns the accepted field names, sorted.
func (d *Deriver[Base, Extra]) Fields() []string {
	return append([]string(nil), d.names...)
}

// Update is a decoded partial update.
type Update[Base, Extra any] struct {
	Base    Base
	Extra   Extra
	present map[string]derivedField
}

// Has reports whether the payload carried a non-null value for name.
func (u *Update[Base, Extra]) Has(name string) bool {
	_, ok := u.present[name]
	return ok
}

// Changes returns column values for the present fields only.
func (u *Update[Base, Extra]) Changes() ports.Values {
	base := reflect.ValueOf(&u.Base).Elem()
	extra := reflect.ValueOf(&u.Extra).Elem()

	values := make(ports.Values, len(u.present))
	for name, f := range u.present {
		src := base
		if f.extra {
			src = extra
		}
		if v, ok := columnValue(src.Field(f.index)); ok {
			values[name] = v
		}
	}
	return values
}

// Decode parses and validates an update body. Unknown or omitted keys are
// rejected, null counts as absent, and every present field is checked
// against its declared rule. All violations are returned together.
func (d *Deriver[Base, Extra]) Decode(body []byte) (*Update[Base, Extra], error) {
	verr := &domain.ValidationErrors{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		verr.Add("body", "json", "request body must be a JSON object")
		return nil, verr
	}

	u := &Update[Base, Extra]{present: make(map[string]derivedField, len(raw))}
	base := reflect.ValueOf(&u.Base).Elem()
	extra := reflect.ValueOf(&u.Extra).Elem()

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, ok := d.fields[key]
		if !ok {
			verr.Add(key, "unknown", key+" is not an updatable field")
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw[key]), []byte("null")) {
			continue
		}
		target := base.Field(f.index)
		if f.extra {
			target = extra.Field(f.index)
		}
		if err := json.Unmarshal(raw[key], target.Addr().Interface()); err != nil {
			verr.Add(key, "type", "must be "+withArticle(jsonTypeName(target.Type())))
			continue
		}
		u.present[key] = f
	}
	if len(verr.Violations) > 0 {
		return nil, verr
	}

	v := Validator()
	validatePresent(v, &u.Base, u.present, false, verr)
	validatePresent(v, &u.Extra, u.present, true, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return u, nil
}

// validatePresent validates only the fields that were sent, using the rules
// declared on the struct.
func validatePresent(v *validator.Validate, s any, present map[string]derivedField, extra bool, verr *domain.ValidationErrors) {
	keep := make(map[string]struct{}, 2*len(present))
	for name, f := range present {
		if f.extra == extra {
			keep[f.goName] = struct{}{}
			keep[name] = struct{}{}
		}
	}
	if len(keep) == 0 {
		return
	}

	err := v.StructFiltered(s, func(ns []byte) bool {
		if i := bytes.LastIndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		_, ok := keep[string(ns)]
		return !ok
	})
	if err == nil {
		return
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		addFieldErrors(verr, ves)
		return
	}
	verr.Add("body", "invalid", err.Error())
}
