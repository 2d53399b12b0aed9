package utils

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation errors under the json field names (judul, penulis...)
	// instead of the Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	}
}

// ValidationMessages turns validator errors into a field -> message map.
func ValidationMessages(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string)
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			fields[e.Field()] = "wajib diisi"
		case "max":
			fields[e.Field()] = "maksimal " + e.Param()
		case "min":
			fields[e.Field()] = "minimal " + e.Param()
		default:
			fields[e.Field()] = "tidak valid"
		}
	}
	return fields
}
