package admin

// Jenis kelamin hanya dua ejaan ini; client tidak pernah mengirim ejaan lain.
const (
	GenderPria      = "pria"
	GenderPerempuan = "perempuan"
)

// Admin adalah record administrator seperti yang dikembalikan API.
// ID ditentukan server dan bersifat opaque bagi client.
type Admin struct {
	ID           string `json:"id"`
	NamaDepan    string `json:"namaDepan"`
	NamaBelakang string `json:"namaBelakang"`
	Email        string `json:"email"`
	TanggalLahir string `json:"tanggalLahir"`
	JenisKelamin string `json:"jenisKelamin"`
}

// CreateAdminRequest adalah payload tambah admin. Tidak ada field
// noHp/alamat: bentuk payload dijaga oleh tipe, bukan penyaringan runtime.
type CreateAdminRequest struct {
	NamaDepan    string `json:"namaDepan" validate:"required"`
	NamaBelakang string `json:"namaBelakang" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	JenisKelamin string `json:"jenisKelamin" validate:"required,oneof=pria perempuan"`
	TanggalLahir string `json:"tanggalLahir"`
	Password     string `json:"password" validate:"required"`
}

// UpdateAdminForm adalah form modal edit; ID tidak ikut terkirim di body.
type UpdateAdminForm struct {
	ID           string `json:"-" validate:"required"`
	NamaDepan    string `json:"namaDepan" validate:"required"`
	NamaBelakang string `json:"namaBelakang" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	TanggalLahir string `json:"tanggalLahir" validate:"required"`
	JenisKelamin string `json:"jenisKelamin" validate:"required,oneof=pria perempuan"`
}

// ProfileForm adalah form layar profil. Password kosong tidak ikut
// terkirim di payload (tidak mengganti kredensial).
type ProfileForm struct {
	NamaDepan    string `json:"namaDepan" validate:"required"`
	NamaBelakang string `json:"namaBelakang" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	TanggalLahir string `json:"tanggalLahir"`
	JenisKelamin string `json:"jenisKelamin" validate:"required,oneof=pria perempuan"`
	Password     string `json:"password,omitempty"`
}

// listEnvelope adalah bentuk response list: {data, total}.
type listEnvelope struct {
	Data  []Admin `json:"data"`
	Total int     `json:"total"`
}

// detailEnvelope membungkus GET /admin/:id: {data: {...}}.
type detailEnvelope struct {
	Data Admin `json:"data"`
}
