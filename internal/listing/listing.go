// Package listing berisi controller list berhalaman yang dipakai semua
// layar daftar. Logika paginasinya ditulis sekali, generic terhadap tipe
// baris, lalu diinstansiasi per resource (admin, pegawai).
package listing

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Page adalah satu halaman hasil fetch beserta total dari server.
type Page[T any] struct {
	Rows []T
	// Total 0 berarti server tidak menyertakan total; nilai lama dipertahankan.
	Total int
}

// Fetcher mengambil satu halaman dari API, diparameterkan page dan limit.
type Fetcher[T any] func(ctx context.Context, page, limit int) (Page[T], error)

// PageSizes adalah pilihan ukuran halaman yang tersedia di layar.
var PageSizes = []int{5, 10, 15, 20, 50}

const DefaultPageSize = 5

// Controller menyimpan state list satu layar: halaman aktif, ukuran
// halaman, baris hasil fetch terakhir, dan total dari server.
//
// Load yang tersusul load lebih baru tidak meng-apply hasilnya (guard
// sequence number), jadi response yang datang terlambat tidak menimpa
// state yang lebih baru. Request yang sudah jalan tidak dibatalkan.
type Controller[T any] struct {
	mu     sync.Mutex
	fetch  Fetcher[T]
	logger *zap.Logger
	sf     singleflight.Group

	page     int
	pageSize int
	rows     []T
	total    int
	loading  bool
	seq      uint64
}

func NewController[T any](fetch Fetcher[T], logger *zap.Logger) *Controller[T] {
	if logger == nil {
		logger = zap.L()
	}
	return &Controller[T]{
		fetch:    fetch,
		logger:   logger.Named("listing"),
		page:     1,
		pageSize: DefaultPageSize,
	}
}

// Load mengambil halaman aktif. Saat gagal, baris lama dibiarkan utuh
// dan error dikembalikan ke pemanggil untuk ditampilkan.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	page, limit := c.page, c.pageSize
	c.loading = true
	c.mu.Unlock()

	result, err := c.fetch(ctx, page, limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq == c.seq {
		c.loading = false
	}

	if err != nil {
		c.logger.Error("failed to fetch list",
			zap.Int("page", page),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return err
	}

	if seq != c.seq {
		// Sudah tersusul load yang lebih baru; hasil basi dibuang.
		c.logger.Debug("stale list response dropped", zap.Uint64("seq", seq))
		return nil
	}

	c.rows = result.Rows
	if result.Total > 0 {
		c.total = result.Total
	}
	return nil
}

// Refresh mem-fetch ulang halaman aktif. Trigger yang datang bersamaan
// digabung menjadi satu fetch, bukan satu fetch per trigger.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		return nil, c.Load(ctx)
	})
	return err
}

// GoToPage pindah halaman lalu memuat ulang. Nomor di luar rentang
// [1, TotalPages] diabaikan tanpa mengubah state.
func (c *Controller[T]) GoToPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 1 || n > c.totalPagesLocked() {
		c.mu.Unlock()
		return nil
	}
	c.page = n
	c.mu.Unlock()

	return c.Load(ctx)
}

// ChangePageSize mengganti ukuran halaman dan selalu kembali ke halaman
// pertama supaya tidak terdampar di halaman di luar rentang. Ukuran di
// luar pilihan PageSizes diabaikan.
func (c *Controller[T]) ChangePageSize(ctx context.Context, n int) error {
	if !validPageSize(n) {
		return nil
	}

	c.mu.Lock()
	c.pageSize = n
	c.page = 1
	c.mu.Unlock()

	return c.Load(ctx)
}

func validPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// TotalPages dihitung dari total server, minimal 1 untuk display.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

func (c *Controller[T]) totalPagesLocked() int {
	pages := (c.total + c.pageSize - 1) / c.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([]T, len(c.rows))
	copy(rows, c.rows)
	return rows
}

func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
