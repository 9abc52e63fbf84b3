package dto

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"time"

	"shootfed/src/core/ports"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date on the wire ("2006-01-02"). Validate it with
// `datetime=2006-01-02`; it is written to DATE columns as a time.Time.
type Date string

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return time.Parse(DateLayout, string(d))
}

// Timestamp is an RFC 3339 instant on the wire, written as a time.Time.
type Timestamp string

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return time.Parse(time.RFC3339, string(t))
}

// ToValues turns a bound request struct into column values. Nil pointers and
// empty JSON payloads are left out so column defaults apply.
func ToValues(req any) ports.Values {
	rv := reflect.Indirect(reflect.ValueOf(req))
	rt := rv.Type()

	values := make(ports.Values, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := fieldName(f)
		if name == "" {
			continue
		}
		if v, ok := columnValue(rv.Field(i)); ok {
			values[name] = v
		}
	}
	return values
}

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// columnValue unwraps a field into what gets written, reporting false when
// the field carries nothing.
func columnValue(fv reflect.Value) (any, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil, false
		}
		fv = fv.Elem()
	}
	if fv.Type() == rawMessageType {
		raw := fv.Bytes()
		if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, false
		}
		return json.RawMessage(raw), true
	}

	v := fv.Interface()
	if valuer, ok := v.(driver.Valuer); ok {
		out, err := valuer.Value()
		if err != nil {
			// validation rejects unparseable dates before this point
			return v, true
		}
		return out, true
	}
	return v, true
}
