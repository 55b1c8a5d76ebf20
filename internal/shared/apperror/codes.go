package apperror

const (
	// Kegagalan lokal, tertangkap sebelum ada request keluar
	CodeValidation = "VALIDATION_ERROR"

	// Kegagalan request. Semua status 4xx/5xx diperlakukan sama:
	// direduksi menjadi string pesan dari body response.
	CodeAPIRejected  = "API_REJECTED"
	CodeNetworkError = "NETWORK_ERROR"
)
