// Package validate memvalidasi form di sisi client sebelum request
// dikirim. Satu instance validator dipakai bersama, dengan nama field
// diambil dari tag json supaya pesan error cocok dengan payload.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Happid/kepegawaian/internal/shared/apperror"
)

var instance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct menjalankan validasi schema. Mengembalikan AppError dengan kode
// VALIDATION_ERROR jika ada field yang gagal; request jaringan tidak
// boleh terjadi setelah error ini.
func Struct(s any) error {
	if err := instance.Struct(s); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}
