package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field (its json name) to the message shown next to it.
type FieldErrors map[string]string

// CustomValidator - обертка над validator с сообщениями для формы.
type CustomValidator struct {
	validator *validator.Validate
}

// Check runs the struct's rules and returns a message per failing field.
// An empty result means the input may be submitted.
func (cv *CustomValidator) Check(i interface{}) FieldErrors {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"": err.Error()}
	}

	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	result := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := result[fe.Field()]; seen {
			continue
		}
		result[fe.Field()] = messageFor(fe, labelOf(t, fe.StructField()))
	}
	return result
}

// New создает и настраивает валидатор
func New() *CustomValidator {
	v := validator.New()

	// Ошибки адресуются по json-имени поля, как и поля формы.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("validation rules registration failed: " + err.Error())
	}

	return &CustomValidator{validator: v}
}

func labelOf(t reflect.Type, structField string) string {
	if t.Kind() != reflect.Struct {
		return structField
	}
	if f, ok := t.FieldByName(structField); ok {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
	}
	return structField
}
