package pegawai

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/listing"
	"github.com/Happid/kepegawaian/internal/shared/validate"
)

type Service interface {
	List(ctx context.Context, page, limit int) (listing.Page[Pegawai], error)
	Get(ctx context.Context, id string) (Pegawai, error)
	Create(ctx context.Context, req CreatePegawaiRequest) error
	Update(ctx context.Context, form UpdatePegawaiForm) error
}

type service struct {
	factory *api.Factory
	logger  *zap.Logger
}

func NewService(factory *api.Factory, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{factory: factory, logger: logger.Named("pegawai.service")}
}

func (s *service) List(ctx context.Context, page, limit int) (listing.Page[Pegawai], error) {
	query := url.Values{
		"limit": {strconv.Itoa(limit)},
		"page":  {strconv.Itoa(page)},
	}

	var env listEnvelope
	if err := s.factory.Client().Get(ctx, "/pegawai", query, &env); err != nil {
		return listing.Page[Pegawai]{}, err
	}
	return listing.Page[Pegawai]{Rows: env.Data, Total: env.Total}, nil
}

// Get mengembalikan detail pegawai lengkap dengan daftar cuti. Tidak
// seperti admin, response detail pegawai datang tanpa amplop data.
func (s *service) Get(ctx context.Context, id string) (Pegawai, error) {
	var p Pegawai
	if err := s.factory.Client().Get(ctx, "/pegawai/"+id, nil, &p); err != nil {
		return Pegawai{}, err
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, req CreatePegawaiRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if err := s.factory.Client().Post(ctx, "/pegawai", req, nil); err != nil {
		return err
	}
	s.logger.Info("pegawai created", zap.String("email", req.Email))
	return nil
}

func (s *service) Update(ctx context.Context, form UpdatePegawaiForm) error {
	if err := validate.Struct(form); err != nil {
		return err
	}
	return s.factory.Client().Patch(ctx, "/pegawai/"+form.ID, form, nil)
}
