package cuti

// Cuti adalah satu catatan izin milik tepat satu pegawai. Selalu
// di-fetch menempel pada record pegawai, tapi dibuat dan dihapus lewat
// endpoint sendiri; tidak ada cascade di sisi client.
type Cuti struct {
	ID             string `json:"id"`
	Alasan         string `json:"alasan"`
	TanggalMulai   string `json:"tanggalMulai"`
	TanggalSelesai string `json:"tanggalSelesai"`
}

// CreateCutiRequest membawa id pegawai pemilik di payload.
type CreateCutiRequest struct {
	Alasan         string `json:"alasan" validate:"required"`
	TanggalMulai   string `json:"tanggalMulai" validate:"required"`
	TanggalSelesai string `json:"tanggalSelesai" validate:"required"`
	PegawaiID      string `json:"pegawaiId" validate:"required"`
}
