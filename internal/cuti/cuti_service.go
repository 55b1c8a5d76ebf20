package cuti

import (
	"context"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/shared/validate"
)

type Service interface {
	Create(ctx context.Context, req CreateCutiRequest) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	factory *api.Factory
	logger  *zap.Logger
}

func NewService(factory *api.Factory, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{factory: factory, logger: logger.Named("cuti.service")}
}

func (s *service) Create(ctx context.Context, req CreateCutiRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if err := s.factory.Client().Post(ctx, "/cuti", req, nil); err != nil {
		return err
	}
	s.logger.Info("cuti created", zap.String("pegawai_id", req.PegawaiID))
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.factory.Client().Delete(ctx, "/cuti/"+id)
}
