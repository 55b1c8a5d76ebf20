package apperror

import "fmt"

// RequiredField mengembalikan error validasi untuk field wajib yang kosong.
func RequiredField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s wajib diisi", field), 0)
}

// InvalidField mengembalikan error validasi untuk field dengan format salah.
func InvalidField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s tidak valid", field), 0)
}

// IsValidation melaporkan apakah err adalah kegagalan validasi lokal,
// yaitu kegagalan yang tertangkap sebelum ada panggilan jaringan.
func IsValidation(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == CodeValidation
}
