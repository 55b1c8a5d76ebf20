// Package nav mendefinisikan kontrak navigasi antar layar.
// Implementasinya disediakan oleh front end (CLI), layar hanya memanggil
// Replace/Push tanpa tahu bagaimana perpindahan layar dirender.
package nav

// Route adalah identitas sebuah layar.
type Route string

const (
	RouteLogin   Route = "/login"
	RouteAdmin   Route = "/admin"
	RoutePegawai Route = "/pegawai"
	RouteProfile Route = "/profile"
)

// Navigator memindahkan user antar layar.
//
// Replace mengganti entry history saat ini (back tidak kembali ke layar
// sebelumnya), Push menambah entry baru.
type Navigator interface {
	Replace(r Route)
	Push(r Route)
}

// Func adalah adapter supaya fungsi biasa bisa dipakai sebagai Navigator.
type Func func(r Route, replace bool)

func (f Func) Replace(r Route) { f(r, true) }
func (f Func) Push(r Route)    { f(r, false) }
