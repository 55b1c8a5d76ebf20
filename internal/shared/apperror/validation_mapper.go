package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// namaDepan / nama_depan -> Nama Depan
	s = strings.ReplaceAll(s, "_", " ")
	s = splitCamel(s)

	caser := cases.Title(language.Indonesian)
	return caser.String(s)
}

func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MapValidationError mengubah error dari validator menjadi AppError
// dengan pesan yang layak ditampilkan per field. Hanya error pertama
// yang diangkat, mengikuti perilaku form di layar.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]

		// e.Field() sudah berupa nama tag json karena RegisterTagNameFunc
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "email":
			return New(CodeValidation, "Format email tidak valid", 0)
		case "min":
			return New(CodeValidation, field+" minimal "+e.Param()+" karakter", 0)
		default:
			return InvalidField(field)
		}
	}

	return New(CodeValidation, "Input tidak valid", 0)
}
