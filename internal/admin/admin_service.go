package admin

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
	List(ctx context.Context, page, limit int) (listing.Page[Admin], error)
	Get(ctx context.Context, id string) (Admin, error)
	Create(ctx context.Context, req CreateAdminRequest) error
	Update(ctx context.Context, form UpdateAdminForm) error
	UpdateProfile(ctx context.Context, id string, form ProfileForm) error
}

type service struct {
	factory *api.Factory
	logger  *zap.Logger
}

func NewService(factory *api.Factory, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{factory: factory, logger: logger.Named("admin.service")}
}

func (s *service) List(ctx context.Context, page, limit int) (listing.Page[Admin], error) {
	query := url.Values{
		"limit": {strconv.Itoa(limit)},
		"page":  {strconv.Itoa(page)},
	}

	var env listEnvelope
	if err := s.factory.Client().Get(ctx, "/admin", query, &env); err != nil {
		return listing.Page[Admin]{}, err
	}
	return listing.Page[Admin]{Rows: env.Data, Total: env.Total}, nil
}

func (s *service) Get(ctx context.Context, id string) (Admin, error) {
	var env detailEnvelope
	if err := s.factory.Client().Get(ctx, "/admin/"+id, nil, &env); err != nil {
		return Admin{}, err
	}
	return env.Data, nil
}

func (s *service) Create(ctx context.Context, req CreateAdminRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if err := s.factory.Client().Post(ctx, "/admin", req, nil); err != nil {
		return err
	}
	s.logger.Info("admin created", zap.String("email", req.Email))
	return nil
}

func (s *service) Update(ctx context.Context, form UpdateAdminForm) error {
	if err := validate.Struct(form); err != nil {
		return err
	}
	return s.factory.Client().Patch(ctx, "/admin/"+form.ID, form, nil)
}

func (s *service) UpdateProfile(ctx context.Context, id string, form ProfileForm) error {
	if err := validate.Struct(form); err != nil {
		return err
	}
	// password kosong otomatis hilang dari payload lewat omitempty
	return s.factory.Client().Patch(ctx, "/admin/"+id, form, nil)
}
