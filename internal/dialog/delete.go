package dialog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

// DeleteDialog adalah modal konfirmasi hapus. Generik terhadap jenis
// resource lewat segmen path ("admin", "pegawai", "cuti"), satu-satunya
// titik reuse lintas entity.
type DeleteDialog struct {
	mu       sync.Mutex
	factory  *api.Factory
	resource string
	notices  *notice.Board
	logger   *zap.Logger

	state     State
	id        string
	nama      string
	onSuccess []func()
}

func NewDeleteDialog(factory *api.Factory, resource string, board *notice.Board, logger *zap.Logger) *DeleteDialog {
	if logger == nil {
		logger = zap.L()
	}
	return &DeleteDialog{
		factory:  factory,
		resource: resource,
		notices:  board,
		logger:   logger.Named("dialog.delete"),
	}
}

func (d *DeleteDialog) OnSuccess(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onSuccess = append(d.onSuccess, fn)
}

// Open menyiapkan konfirmasi untuk satu record.
func (d *DeleteDialog) Open(id, nama string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.id = id
	d.nama = nama
	d.state = StateOpen
}

func (d *DeleteDialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.id = ""
	d.nama = ""
	d.state = StateClosed
}

func (d *DeleteDialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Confirm mengirim DELETE /{resource}/{id}. Sukses menampilkan banner,
// memanggil subscriber, dan menutup dialog; gagal menampilkan pesan
// error dari API dan membiarkan dialog terbuka.
func (d *DeleteDialog) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if d.state != StateOpen {
		d.mu.Unlock()
		return ErrNotOpen
	}
	id, nama := d.id, d.nama
	d.state = StateSubmitting
	d.mu.Unlock()

	err := d.factory.Client().Delete(ctx, fmt.Sprintf("/%s/%s", d.resource, id))

	d.mu.Lock()
	if err != nil {
		d.state = StateOpen
		d.mu.Unlock()

		if d.notices != nil {
			d.notices.Post(apperror.MessageOf(err), true)
		}
		d.logger.Warn("delete failed",
			zap.String("resource", d.resource),
			zap.String("id", id),
			zap.Error(err),
		)
		return err
	}

	d.state = StateClosed
	d.id = ""
	d.nama = ""
	subs := make([]func(), len(d.onSuccess))
	copy(subs, d.onSuccess)
	d.mu.Unlock()

	if d.notices != nil {
		d.notices.Post(fmt.Sprintf("Data %s telah terhapus", nama), false)
	}
	for _, fn := range subs {
		fn()
	}
	return nil
}
