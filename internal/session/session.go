// Package session menyimpan kredensial login di file JSON lokal,
// padanan durable key-value storage di browser. Token dibaca ulang dari
// disk pada setiap akses supaya kredensial yang baru didapat langsung
// terpakai oleh panggilan berikutnya.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type sessionData struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// Store adalah state sesi process-wide: diisi saat login sukses,
// dikosongkan saat logout, dan dibaca (tanpa refresh implisit) pada
// setiap panggilan ter-autentikasi.
type Store interface {
	Token() string
	AdminID() string
	Set(token, adminID string) error
	Clear() error
}

type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore membuat Store berbasis file pada path yang diberikan.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) read() sessionData {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data sessionData
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data
	}
	// File korup diperlakukan sama dengan tidak ada sesi.
	_ = json.Unmarshal(raw, &data)
	return data
}

func (s *fileStore) Token() string {
	return s.read().Token
}

func (s *fileStore) AdminID() string {
	return s.read().AdminID
}

func (s *fileStore) Set(token, adminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sessionData{Token: token, AdminID: adminID})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
