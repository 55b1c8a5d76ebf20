// Package mockapi adalah server REST in-memory untuk pengembangan
// dashboard tanpa backend betulan. Bentuk wire-nya mengikuti API
// produksi apa adanya, termasuk ketidakkonsistenan amplop response
// antara detail admin dan detail pegawai.
package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Config struct {
	// Secret menandatangani token HS256.
	Secret string
	// SeedEmail/SeedPassword membuat satu admin awal yang bisa login.
	SeedEmail    string
	SeedPassword string
	// TokenTTL default 24 jam.
	TokenTTL time.Duration
}

type server struct {
	store  *Store
	cfg    Config
	logger *zap.Logger
}

// NewRouter membangun engine gin lengkap dengan middleware dan seluruh
// route. Store dikembalikan juga supaya test bisa menyuntik data.
func NewRouter(cfg Config, logger *zap.Logger) (*gin.Engine, *Store, error) {
	if logger == nil {
		logger = zap.L()
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	store := NewStore()
	if cfg.SeedEmail != "" {
		if _, err := store.SeedAdmin(cfg.SeedEmail, cfg.SeedPassword, Admin{
			NamaDepan:    "Admin",
			NamaBelakang: "Utama",
			JenisKelamin: "pria",
		}); err != nil {
			return nil, nil, err
		}
	}

	s := &server{store: store, cfg: cfg, logger: logger.Named("mockapi")}

	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	r.POST("/auth/login", rateLimitByIP(rate.Limit(1), 5), s.login)

	authed := r.Group("/", bearerAuth([]byte(cfg.Secret)))
	{
		authed.GET("/admin", s.listAdmins)
		authed.GET("/admin/:id", s.getAdmin)
		authed.POST("/admin", s.createAdmin)
		authed.PATCH("/admin/:id", s.patchAdmin)
		authed.DELETE("/admin/:id", s.deleteAdmin)

		authed.GET("/pegawai", s.listPegawai)
		authed.GET("/pegawai/:id", s.getPegawai)
		authed.POST("/pegawai", s.createPegawai)
		authed.PATCH("/pegawai/:id", s.patchPegawai)
		authed.DELETE("/pegawai/:id", s.deletePegawai)

		authed.POST("/cuti", s.createCuti)
		authed.DELETE("/cuti/:id", s.deleteCuti)
	}

	return r, store, nil
}

func (s *server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input tidak valid"})
		return
	}

	adminID, ok := s.store.AuthenticateAdmin(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(s.cfg.TokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan, coba lagi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"admin": gin.H{"id": adminID},
	})
}

func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	return page, limit
}

func (s *server) listAdmins(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, total := s.store.ListAdmins(page, limit)
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": total})
}

// getAdmin membungkus record di amplop data; detail pegawai tidak.
func (s *server) getAdmin(c *gin.Context) {
	a, ok := s.store.GetAdmin(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Data tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": a})
}

func (s *server) createAdmin(c *gin.Context) {
	var req struct {
		Admin
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input tidak valid"})
		return
	}

	id, err := s.store.CreateAdmin(req.Admin, req.Password)
	if err != nil {
		s.logger.Error("create admin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan, coba lagi"})
		return
	}
	a, _ := s.store.GetAdmin(id)
	c.JSON(http.StatusCreated, gin.H{"data": a})
}

func (s *server) patchAdmin(c *gin.Context) {
	var patch map[string]string
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input tidak valid"})
		return
	}
	if !s.store.UpdateAdmin(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Data tidak ditemukan"})
		return
	}
	a, _ := s.store.GetAdmin(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"data": a})
}

func (s *server) deleteAdmin(c *gin.Context) {
	if _, ok := s.store.DeleteAdmin(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Data tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *server) listPegawai(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, total := s.store.ListPegawai(page, limit)
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": total})
}

type pegawaiDetail struct {
	Pegawai
	Cuti []Cuti `json:"cuti"`
}

func (s *server) getPegawai(c *gin.Context) {
	p, ok := s.store.GetPegawai(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Data tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, pegawaiDetail{Pegawai: p, Cuti: s.store.CutiOf(p.ID)})
}

func (s *server) createPegawai(c *gin.Context) {
	var req Pegawai
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input tidak valid"})
		return
	}
	req.ID = ""
	id := s.store.CreatePegawai(req)
	p, _ := s.store.GetPegawai(id)
	c.JSON(http.StatusCreated, p)
}

func (s *server) patchPegawai(c *gin.Context) {
	var patch map[string]string
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input tidak valid"})
		return
	}
	if !s.store.UpdatePegawai(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Data tidak ditemukan"})
		return
	}
	p, _ := s.store.GetPegawai(c.Param("id"))
	c.JSON(http.StatusOK, p)
}

func (s *server) deletePegawai(c *gin.Context) {
	if _, ok := s.store.DeletePegawai(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Data tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *server) createCuti(c *gin.Context) {
	var req Cuti
	if err := c.ShouldBindJSON(&req); err != nil || req.PegawaiID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Input tidak valid"})
		return
	}
	req.ID = ""
	id, ok := s.store.CreateCuti(req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pegawai tidak ditemukan"})
		return
	}
	req.ID = id
	c.JSON(http.StatusCreated, req)
}

func (s *server) deleteCuti(c *gin.Context) {
	if !s.store.DeleteCuti(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Data tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
