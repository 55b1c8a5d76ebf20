package mockapi

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Admin disimpan dengan hash password; field hash tidak pernah ikut
// ter-serialize ke response.
type Admin struct {
	ID           string `json:"id"`
	NamaDepan    string `json:"namaDepan"`
	NamaBelakang string `json:"namaBelakang"`
	Email        string `json:"email"`
	TanggalLahir string `json:"tanggalLahir"`
	JenisKelamin string `json:"jenisKelamin"`

	passwordHash []byte
}

type Pegawai struct {
	ID           string `json:"id"`
	NamaDepan    string `json:"namaDepan"`
	NamaBelakang string `json:"namaBelakang"`
	Email        string `json:"email"`
	TanggalLahir string `json:"tanggalLahir"`
	JenisKelamin string `json:"jenisKelamin"`
	NoHp         string `json:"noHp"`
	Alamat       string `json:"alamat"`
}

type Cuti struct {
	ID             string `json:"id"`
	Alasan         string `json:"alasan"`
	TanggalMulai   string `json:"tanggalMulai"`
	TanggalSelesai string `json:"tanggalSelesai"`
	PegawaiID      string `json:"pegawaiId"`
}

// Store adalah persistence in-memory; cukup untuk pengembangan client
// tanpa backend betulan. Urutan list stabil berdasar waktu insert.
type Store struct {
	mu      sync.RWMutex
	admins  map[string]*Admin
	pegawai map[string]*Pegawai
	cuti    map[string]*Cuti
	seq     int
	order   map[string]int
}

func NewStore() *Store {
	return &Store{
		admins:  make(map[string]*Admin),
		pegawai: make(map[string]*Pegawai),
		cuti:    make(map[string]*Cuti),
		order:   make(map[string]int),
	}
}

// SeedAdmin menambahkan satu admin yang bisa login. Dipanggil saat
// bootstrap supaya server baru tidak kosong sama sekali.
func (s *Store) SeedAdmin(email, password string, a Admin) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	a.Email = email
	a.passwordHash = hash
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertAdminLocked(&a), nil
}

func (s *Store) insertAdminLocked(a *Admin) string {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	s.seq++
	s.order[a.ID] = s.seq
	s.admins[a.ID] = a
	return a.ID
}

// AuthenticateAdmin mencocokkan email + password, mengembalikan id
// admin kalau cocok.
func (s *Store) AuthenticateAdmin(email, password string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil {
			return a.ID, true
		}
		return "", false
	}
	return "", false
}

func (s *Store) CreateAdmin(a Admin, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	a.passwordHash = hash
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertAdminLocked(&a), nil
}

func (s *Store) GetAdmin(id string) (Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[id]
	if !ok {
		return Admin{}, false
	}
	return *a, true
}

// UpdateAdmin menimpa field yang hadir di patch; password kosong
// berarti kredensial tidak berubah.
func (s *Store) UpdateAdmin(id string, patch map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[id]
	if !ok {
		return false
	}
	applyField(patch, "namaDepan", &a.NamaDepan)
	applyField(patch, "namaBelakang", &a.NamaBelakang)
	applyField(patch, "email", &a.Email)
	applyField(patch, "tanggalLahir", &a.TanggalLahir)
	applyField(patch, "jenisKelamin", &a.JenisKelamin)
	if pw, ok := patch["password"]; ok && pw != "" {
		if hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost); err == nil {
			a.passwordHash = hash
		}
	}
	return true
}

func (s *Store) DeleteAdmin(id string) (Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[id]
	if !ok {
		return Admin{}, false
	}
	delete(s.admins, id)
	delete(s.order, id)
	return *a, true
}

// ListAdmins mengembalikan satu halaman plus total seluruh record.
func (s *Store) ListAdmins(page, limit int) ([]Admin, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*Admin, 0, len(s.admins))
	for _, a := range s.admins {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return s.order[all[i].ID] < s.order[all[j].ID] })

	lo, hi := pageBounds(len(all), page, limit)
	rows := make([]Admin, 0, hi-lo)
	for _, a := range all[lo:hi] {
		rows = append(rows, *a)
	}
	return rows, len(all)
}

func (s *Store) CreatePegawai(p Pegawai) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.seq++
	s.order[p.ID] = s.seq
	s.pegawai[p.ID] = &p
	return p.ID
}

func (s *Store) GetPegawai(id string) (Pegawai, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pegawai[id]
	if !ok {
		return Pegawai{}, false
	}
	return *p, true
}

func (s *Store) UpdatePegawai(id string, patch map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pegawai[id]
	if !ok {
		return false
	}
	applyField(patch, "namaDepan", &p.NamaDepan)
	applyField(patch, "namaBelakang", &p.NamaBelakang)
	applyField(patch, "email", &p.Email)
	applyField(patch, "tanggalLahir", &p.TanggalLahir)
	applyField(patch, "jenisKelamin", &p.JenisKelamin)
	applyField(patch, "noHp", &p.NoHp)
	applyField(patch, "alamat", &p.Alamat)
	return true
}

// DeletePegawai ikut menghapus cuti miliknya; kaskade terjadi di
// server, bukan di client.
func (s *Store) DeletePegawai(id string) (Pegawai, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pegawai[id]
	if !ok {
		return Pegawai{}, false
	}
	delete(s.pegawai, id)
	delete(s.order, id)
	for cid, c := range s.cuti {
		if c.PegawaiID == id {
			delete(s.cuti, cid)
			delete(s.order, cid)
		}
	}
	return *p, true
}

func (s *Store) ListPegawai(page, limit int) ([]Pegawai, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*Pegawai, 0, len(s.pegawai))
	for _, p := range s.pegawai {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return s.order[all[i].ID] < s.order[all[j].ID] })

	lo, hi := pageBounds(len(all), page, limit)
	rows := make([]Pegawai, 0, hi-lo)
	for _, p := range all[lo:hi] {
		rows = append(rows, *p)
	}
	return rows, len(all)
}

func (s *Store) CreateCuti(c Cuti) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pegawai[c.PegawaiID]; !ok {
		return "", false
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	s.seq++
	s.order[c.ID] = s.seq
	s.cuti[c.ID] = &c
	return c.ID, true
}

func (s *Store) DeleteCuti(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cuti[id]; !ok {
		return false
	}
	delete(s.cuti, id)
	delete(s.order, id)
	return true
}

// CutiOf mengembalikan cuti milik satu pegawai, urut insert.
func (s *Store) CutiOf(pegawaiID string) []Cuti {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]Cuti, 0)
	for _, c := range s.cuti {
		if c.PegawaiID == pegawaiID {
			rows = append(rows, *c)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return s.order[rows[i].ID] < s.order[rows[j].ID] })
	return rows
}

func applyField(patch map[string]string, key string, dst *string) {
	if v, ok := patch[key]; ok {
		*dst = v
	}
}

func pageBounds(total, page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = total
	}
	lo := (page - 1) * limit
	if lo > total {
		lo = total
	}
	hi := lo + limit
	if hi > total {
		hi = total
	}
	return lo, hi
}
