// Package notice menampilkan pesan banner sementara (toast) yang
// hilang sendiri setelah TTL tertentu.
package notice

import (
	"sync"
	"time"
)

// DefaultTTL mengikuti durasi toast di layar: 5 detik.
const DefaultTTL = 5 * time.Second

// Notice adalah satu pesan yang sedang tampil.
type Notice struct {
	Message string
	IsError bool
}

// Board menampung paling banyak satu pesan aktif. Post yang lebih baru
// menggantikan pesan lama, dan expiry pesan lama tidak boleh menghapus
// pesan baru (dijaga lewat generation counter).
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notice
	gen     uint64
}

func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Board{ttl: ttl}
}

// Post menampilkan pesan dan menjadwalkan auto-clear setelah TTL board.
func (b *Board) Post(message string, isError bool) {
	b.post(message, isError, b.ttl)
}

// PostFor sama dengan Post dengan TTL khusus (form cuti memakai 6 detik).
func (b *Board) PostFor(message string, isError bool, ttl time.Duration) {
	b.post(message, isError, ttl)
}

func (b *Board) post(message string, isError bool, ttl time.Duration) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.current = &Notice{Message: message, IsError: isError}
	b.mu.Unlock()

	time.AfterFunc(ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen == gen {
			b.current = nil
		}
	})
}

// Current mengembalikan pesan yang sedang tampil, atau ok=false jika kosong.
func (b *Board) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notice{}, false
	}
	return *b.current, true
}

// Clear menghapus pesan aktif lebih awal.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.current = nil
}
