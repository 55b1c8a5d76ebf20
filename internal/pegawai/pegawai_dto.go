package pegawai

import "github.com/Happid/kepegawaian/internal/cuti"

// Pegawai adalah record karyawan seperti yang dikembalikan API.
// GET /pegawai/:id mengembalikan bentuk ini apa adanya (tanpa amplop
// data) dengan daftar cuti tertanam.
type Pegawai struct {
	ID           string      `json:"id"`
	NamaDepan    string      `json:"namaDepan"`
	NamaBelakang string      `json:"namaBelakang"`
	Email        string      `json:"email"`
	TanggalLahir string      `json:"tanggalLahir"`
	JenisKelamin string      `json:"jenisKelamin"`
	NoHp         string      `json:"noHp"`
	Alamat       string      `json:"alamat"`
	Cuti         []cuti.Cuti `json:"cuti"`
}

// CreatePegawaiRequest adalah payload tambah pegawai. Tidak ada field
// password maupun tanggalLahir di form tambah.
type CreatePegawaiRequest struct {
	NamaDepan    string `json:"namaDepan" validate:"required"`
	NamaBelakang string `json:"namaBelakang" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	JenisKelamin string `json:"jenisKelamin" validate:"required,oneof=pria perempuan"`
	NoHp         string `json:"noHp" validate:"required"`
	Alamat       string `json:"alamat" validate:"required"`
}

// UpdatePegawaiForm adalah form edit di dialog detail; ID tidak ikut
// terkirim di body.
type UpdatePegawaiForm struct {
	ID           string `json:"-" validate:"required"`
	NamaDepan    string `json:"namaDepan" validate:"required"`
	NamaBelakang string `json:"namaBelakang" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	TanggalLahir string `json:"tanggalLahir" validate:"required"`
	JenisKelamin string `json:"jenisKelamin" validate:"required,oneof=pria perempuan"`
	NoHp         string `json:"noHp" validate:"required"`
	Alamat       string `json:"alamat" validate:"required"`
}

type listEnvelope struct {
	Data  []Pegawai `json:"data"`
	Total int       `json:"total"`
}
