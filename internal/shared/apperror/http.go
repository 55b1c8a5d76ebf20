package apperror

import (
	"encoding/json"
	"fmt"
	"io"
)

// FallbackMessage dipakai jika body response tidak menyertakan message.
const FallbackMessage = "Terjadi kesalahan, coba lagi"

type apiErrorBody struct {
	Message string `json:"message"`
}

// FromResponse mereduksi response yang ditolak (status non-2xx) menjadi
// AppError. Pesannya diambil dari field message di body; 4xx dan 5xx
// tidak dibedakan perlakuannya.
func FromResponse(status int, body io.Reader) *AppError {
	msg := FallbackMessage

	var parsed apiErrorBody
	if body != nil {
		if err := json.NewDecoder(body).Decode(&parsed); err == nil && parsed.Message != "" {
			msg = parsed.Message
		}
	}

	return New(CodeAPIRejected, msg, status)
}

// FromTransport membungkus kegagalan sebelum ada response (DNS, koneksi putus).
func FromTransport(err error) *AppError {
	return Wrap(err, CodeNetworkError, FallbackMessage, 0)
}

// MessageOf mengambil string pesan yang layak ditampilkan ke user.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr.Message
	}
	return fmt.Sprintf("%v", err)
}
