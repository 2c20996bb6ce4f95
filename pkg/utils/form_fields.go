package utils

import (
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
)

// FormField describes one input of a form struct for rendering.
type FormField struct {
	Name     string
	Label    string
	Value    string
	Required bool
	Error    string
	Options  []string
}

// FormFields lists the inputs of a form struct in declaration order with
// their current values and, when present, their validation messages.
func FormFields(form interface{}, errs map[string]string) []FormField {
	rv := reflect.Indirect(reflect.ValueOf(form))
	rt := rv.Type()

	fields := make([]FormField, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := sf.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}

		var value string
		switch v := rv.Field(i).Interface().(type) {
		case null.String:
			if v.Valid {
				value = v.String
			}
		case string:
			value = v
		}

		fields = append(fields, FormField{
			Name:     name,
			Label:    sf.Tag.Get("label"),
			Value:    value,
			Required: strings.Contains(sf.Tag.Get("validate"), "required"),
			Error:    errs[name],
		})
	}
	return fields
}
