package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"shootfed/src/core/domain"
)

var (
	setupOnce  sync.Once
	translator ut.Translator
)

// Validator returns gin's validator engine, configured on first use to
// report JSON (or query) field names and English messages.
func Validator() *validator.Validate {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("dto: gin validator engine is not go-playground/validator")
	}
	setupOnce.Do(func() {
		v.RegisterTagNameFunc(fieldName)

		locale := en.New()
		uni := ut.New(locale, locale)
		translator, _ = uni.GetTranslator("en")
		if err := entranslations.RegisterDefaultTranslations(v, translator); err != nil {
			panic(fmt.Sprintf("dto: register translations: %v", err))
		}
		for _, r := range customRules {
			if err := v.RegisterValidation(r.tag, r.fn); err != nil {
				panic(fmt.Sprintf("dto: register %s: %v", r.tag, err))
			}
			if err := registerMessage(v, r.tag, r.message, r.param); err != nil {
				panic(fmt.Sprintf("dto: register %s message: %v", r.tag, err))
			}
		}
	})
	return v
}

// customRules are the validation tags this package adds to validator's set.
//   - maxbytes=N caps the UTF-8 length of a string (bcrypt reads 72 bytes).
//   - pagesize bounds a list limit to 1..domain.MaxLimit.
var customRules = []struct {
	tag     string
	fn      validator.Func
	message string
	param   func(validator.FieldError) string
}{
	{
		tag: "maxbytes",
		fn: func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			return err == nil && len(fl.Field().String()) <= n
		},
		message: "{0} must be at most {1} bytes",
		param:   validator.FieldError.Param,
	},
	{
		tag: "pagesize",
		fn: func(fl validator.FieldLevel) bool {
			n := fl.Field().Int()
			return n >= 1 && n <= domain.MaxLimit
		},
		message: "{0} must be between 1 and {1}",
		param:   func(validator.FieldError) string { return strconv.Itoa(domain.MaxLimit) },
	},
}

func registerMessage(v *validator.Validate, tag, text string, param func(validator.FieldError) string) error {
	return v.RegisterTranslation(tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field(), param(fe))
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// fieldName is the wire name of a struct field: its json name, else its
// form or uri name, else the Go name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// BindJSON decodes and validates a request body. Every failure comes back
// as a *domain.ValidationErrors.
func BindJSON(c *gin.Context, obj any) error {
	Validator()
	if err := c.ShouldBindJSON(obj); err != nil {
		return toValidationErrors(err)
	}
	return nil
}

// BindQuery decodes and validates query parameters, applying form defaults.
func BindQuery(c *gin.Context, obj any) error {
	Validator()
	if err := c.ShouldBindQuery(obj); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			return toValidationErrors(err)
		}
		return formTypeError(obj, c.Request.URL.Query(), "query", err)
	}
	return nil
}

// BindURI decodes and validates path parameters.
func BindURI(c *gin.Context, obj any) error {
	Validator()
	if err := c.ShouldBindUri(obj); err != nil {
		return toValidationErrors(err)
	}
	return nil
}

// BindForm decodes and validates form fields, including multipart forms.
func BindForm(c *gin.Context, obj any) error {
	Validator()
	if err := c.ShouldBind(obj); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			return toValidationErrors(err)
		}
		return formTypeError(obj, c.Request.Form, "form", err)
	}
	return nil
}

// formTypeError reports a form or query conversion failure. gin's form
// binding does not say which key failed, so the first declared parameter
// whose value does not parse as its field's type is named; fallback is
// used when none can be pinned down.
func formTypeError(obj any, values url.Values, fallback string, err error) error {
	verr := &domain.ValidationErrors{}
	if name, t, ok := unparsableFormField(reflect.TypeOf(obj), values); ok {
		verr.Add(name, "type", "must be "+withArticle(jsonTypeName(t)))
		return verr
	}
	verr.Add(fallback, "type", err.Error())
	return verr
}

func unparsableFormField(t reflect.Type, values url.Values) (string, reflect.Type, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", nil, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if name, ft, ok := unparsableFormField(f.Type, values); ok {
				return name, ft, true
			}
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			continue
		}
		if raw := values[name]; len(raw) > 0 && !parsesAs(f.Type, raw[0]) {
			return name, f.Type, true
		}
	}
	return "", nil, false
}

// parsesAs mirrors the scalar conversions gin's form binding performs.
// An empty value binds as the zero value.
func parsesAs(t reflect.Type, s string) bool {
	if s == "" {
		return true
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var err error
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err = strconv.ParseInt(s, 10, t.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		_, err = strconv.ParseUint(s, 10, t.Bits())
	case reflect.Float32, reflect.Float64:
		_, err = strconv.ParseFloat(s, t.Bits())
	case reflect.Bool:
		_, err = strconv.ParseBool(s)
	}
	return err == nil
}

func withArticle(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}

func toValidationErrors(err error) error {
	verr := &domain.ValidationErrors{}

	var (
		ves       validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &ves):
		addFieldErrors(verr, ves)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		verr.Add(field, "type", "must be "+withArticle(jsonTypeName(typeErr.Type)))
	case errors.As(err, &syntaxErr):
		verr.Add("body", "json", "request body is not valid JSON")
	case errors.Is(err, io.EOF):
		verr.Add("body", "required", "request body is required")
	default:
		verr.Add("body", "json", err.Error())
	}
	return verr
}

func addFieldErrors(verr *domain.ValidationErrors, ves validator.ValidationErrors) {
	for _, fe := range ves {
		verr.Add(fe.Field(), fe.Tag(), fe.Translate(translator))
	}
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	}
	return t.String()
}
