package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/admin"
	"github.com/Happid/kepegawaian/internal/app"
	"github.com/Happid/kepegawaian/internal/auth"
	"github.com/Happid/kepegawaian/internal/config"
	"github.com/Happid/kepegawaian/internal/nav"
	"github.com/Happid/kepegawaian/internal/pegawai"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	sh := &shell{
		route: nav.RouteLogin,
		in:    bufio.NewScanner(os.Stdin),
	}
	sh.app = app.Build(config.Load(), sh, logger)

	// sesi tersimpan dari run sebelumnya langsung masuk ke layar admin
	sh.app.Gate.Home()

	sh.run()
}

// shell adalah loop terminal yang menjalankan satu layar per route.
// Implementasi nav.Navigator: pindah layar cukup mengganti route aktif.
type shell struct {
	app   *app.App
	route nav.Route
	in    *bufio.Scanner
	quit  bool
}

func (s *shell) Replace(r nav.Route) { s.route = r }
func (s *shell) Push(r nav.Route)    { s.route = r }

func (s *shell) run() {
	ctx := context.Background()
	for !s.quit {
		s.showNotice()
		switch s.route {
		case nav.RouteLogin:
			s.loginScreen(ctx)
		case nav.RouteAdmin:
			s.adminScreen(ctx)
		case nav.RoutePegawai:
			s.pegawaiScreen(ctx)
		case nav.RouteProfile:
			s.profileScreen(ctx)
		default:
			s.route = nav.RouteLogin
		}
	}
}

func (s *shell) showNotice() {
	if n, ok := s.app.Notices.Current(); ok {
		if n.IsError {
			fmt.Println("! " + n.Message)
		} else {
			fmt.Println("* " + n.Message)
		}
		s.app.Notices.Clear()
	}
}

func (s *shell) prompt(label string) string {
	fmt.Print(label)
	if !s.in.Scan() {
		s.quit = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *shell) loginScreen(ctx context.Context) {
	fmt.Println("== Login ==")
	email := s.prompt("email: ")
	if s.quit {
		return
	}
	password := s.prompt("password: ")
	if s.quit {
		return
	}
	_ = s.app.Auth.Login(ctx, auth.LoginRequest{Email: email, Password: password})
}

func (s *shell) adminScreen(ctx context.Context) {
	screen := s.app.AdminScreen
	if !screen.Mount(ctx) {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNama\tEmail\tTanggal Lahir\tJenis Kelamin")
	for i, row := range screen.List.Rows() {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n",
			i+1, row.NamaDepan, row.NamaBelakang, row.Email, row.TanggalLahir, row.JenisKelamin)
	}
	w.Flush()
	fmt.Printf("hal %d/%d  total %d\n", screen.List.Page(), screen.List.TotalPages(), screen.List.Total())

	cmd := s.prompt("admin> ")
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "add":
		screen.Add.Open(admin.CreateAdminRequest{
			NamaDepan:    s.prompt("nama depan: "),
			NamaBelakang: s.prompt("nama belakang: "),
			Email:        s.prompt("email: "),
			JenisKelamin: s.prompt("jenis kelamin (pria/perempuan): "),
			TanggalLahir: s.prompt("tanggal lahir (opsional): "),
			Password:     s.prompt("password: "),
		})
		if err := screen.Add.Submit(ctx); err != nil {
			s.printFormError(screen.Add.Err())
			screen.Add.Close()
		}
	case "edit":
		row, ok := pickRow(screen.List.Rows(), fields)
		if !ok {
			return
		}
		screen.OpenEdit(row)
		form := screen.Edit.Form()
		editString(s, "nama depan", &form.NamaDepan)
		editString(s, "nama belakang", &form.NamaBelakang)
		editString(s, "email", &form.Email)
		editString(s, "tanggal lahir", &form.TanggalLahir)
		editString(s, "jenis kelamin", &form.JenisKelamin)
		screen.Edit.SetForm(form)
		if err := screen.Edit.Submit(ctx); err != nil {
			s.printFormError(screen.Edit.Err())
			screen.Edit.Close()
		}
	case "del":
		row, ok := pickRow(screen.List.Rows(), fields)
		if !ok {
			return
		}
		screen.OpenDelete(row)
		if s.prompt("hapus "+row.NamaDepan+"? (y/n): ") == "y" {
			_ = screen.Del.Confirm(ctx)
		} else {
			screen.Del.Close()
		}
	case "page":
		if n, err := strconv.Atoi(argAt(fields, 1)); err == nil {
			_ = screen.List.GoToPage(ctx, n)
		}
	case "size":
		if n, err := strconv.Atoi(argAt(fields, 1)); err == nil {
			_ = screen.List.ChangePageSize(ctx, n)
		}
	case "pegawai":
		s.route = nav.RoutePegawai
	case "profile":
		s.route = nav.RouteProfile
	case "logout":
		_ = s.app.Auth.Logout()
	case "quit":
		s.quit = true
	}
}

func (s *shell) pegawaiScreen(ctx context.Context) {
	screen := s.app.PegawaiScreen
	if !screen.Mount(ctx) {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNama\tEmail\tNo HP\tAlamat")
	for i, row := range screen.List.Rows() {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n",
			i+1, row.NamaDepan, row.NamaBelakang, row.Email, row.NoHp, row.Alamat)
	}
	w.Flush()
	fmt.Printf("hal %d/%d  total %d\n", screen.List.Page(), screen.List.TotalPages(), screen.List.Total())

	cmd := s.prompt("pegawai> ")
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "add":
		screen.Add.Open(pegawai.CreatePegawaiRequest{
			NamaDepan:    s.prompt("nama depan: "),
			NamaBelakang: s.prompt("nama belakang: "),
			Email:        s.prompt("email: "),
			JenisKelamin: s.prompt("jenis kelamin (pria/perempuan): "),
			NoHp:         s.prompt("no hp: "),
			Alamat:       s.prompt("alamat: "),
		})
		if err := screen.Add.Submit(ctx); err != nil {
			s.printFormError(screen.Add.Err())
			screen.Add.Close()
		}
	case "detail":
		row, ok := pickRow(screen.List.Rows(), fields)
		if !ok {
			return
		}
		if err := screen.OpenDetail(ctx, row); err == nil {
			s.detailLoop(ctx)
		}
	case "del":
		row, ok := pickRow(screen.List.Rows(), fields)
		if !ok {
			return
		}
		screen.OpenDelete(row)
		if s.prompt("hapus "+row.NamaDepan+"? (y/n): ") == "y" {
			_ = screen.Del.Confirm(ctx)
		} else {
			screen.Del.Close()
		}
	case "page":
		if n, err := strconv.Atoi(argAt(fields, 1)); err == nil {
			_ = screen.List.GoToPage(ctx, n)
		}
	case "size":
		if n, err := strconv.Atoi(argAt(fields, 1)); err == nil {
			_ = screen.List.ChangePageSize(ctx, n)
		}
	case "admin":
		s.route = nav.RouteAdmin
	case "profile":
		s.route = nav.RouteProfile
	case "logout":
		_ = s.app.Auth.Logout()
	case "quit":
		s.quit = true
	}
}

// detailLoop menahan shell di dialog detail pegawai sampai ditutup.
func (s *shell) detailLoop(ctx context.Context) {
	detail := s.app.PegawaiScreen.Detail
	for {
		s.showNotice()
		form := detail.Form()
		fmt.Printf("== %s %s ==\n", form.NamaDepan, form.NamaBelakang)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tAlasan\tMulai\tSelesai")
		for i, c := range detail.CutiRows() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, c.Alasan, c.TanggalMulai, c.TanggalSelesai)
		}
		w.Flush()

		cmd := s.prompt("detail> ")
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "edit":
			editString(s, "nama depan", &form.NamaDepan)
			editString(s, "nama belakang", &form.NamaBelakang)
			editString(s, "email", &form.Email)
			editString(s, "tanggal lahir", &form.TanggalLahir)
			editString(s, "jenis kelamin", &form.JenisKelamin)
			editString(s, "no hp", &form.NoHp)
			editString(s, "alamat", &form.Alamat)
			detail.SetForm(form)
			if err := detail.Submit(ctx); err != nil {
				s.printFormError(detail.Err())
				continue
			}
			return
		case "cuti":
			detail.CutiForm.SetFields(
				s.prompt("alasan: "),
				s.prompt("tanggal mulai: "),
				s.prompt("tanggal selesai: "),
			)
			if err := detail.SubmitCuti(ctx); err != nil {
				s.printFormError(err)
			}
		case "delcuti":
			row, ok := pickRow(detail.CutiRows(), fields)
			if !ok {
				continue
			}
			detail.OpenDeleteCuti(row)
			_ = detail.CutiDel.Confirm(ctx)
		case "close":
			detail.Close()
			return
		case "quit":
			detail.Close()
			s.quit = true
			return
		}
	}
}

func (s *shell) profileScreen(ctx context.Context) {
	screen := s.app.ProfileScreen
	if !screen.Mount(ctx) {
		return
	}

	form := screen.Form()
	fmt.Printf("== Profil: %s %s (%s) ==\n", form.NamaDepan, form.NamaBelakang, form.Email)

	switch s.prompt("profile> ") {
	case "edit":
		editString(s, "nama depan", &form.NamaDepan)
		editString(s, "nama belakang", &form.NamaBelakang)
		editString(s, "email", &form.Email)
		editString(s, "tanggal lahir", &form.TanggalLahir)
		editString(s, "jenis kelamin", &form.JenisKelamin)
		form.Password = s.prompt("password baru (kosong = tetap): ")
		screen.SetForm(form)
		if err := screen.Submit(ctx); err != nil {
			s.printFormError(err)
		}
	case "admin":
		s.route = nav.RouteAdmin
	case "pegawai":
		s.route = nav.RoutePegawai
	case "logout":
		_ = s.app.Auth.Logout()
	case "quit":
		s.quit = true
	}
}

func (s *shell) printFormError(err error) {
	if err != nil {
		fmt.Println("! " + err.Error())
	}
}

// editString menawarkan nilai lama; input kosong mempertahankannya.
func editString(s *shell, label string, dst *string) {
	if v := s.prompt(fmt.Sprintf("%s [%s]: ", label, *dst)); v != "" {
		*dst = v
	}
}

func pickRow[T any](rows []T, fields []string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(argAt(fields, 1))
	if err != nil || n < 1 || n > len(rows) {
		fmt.Println("! nomor baris tidak valid")
		return zero, false
	}
	return rows[n-1], true
}

func argAt(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
