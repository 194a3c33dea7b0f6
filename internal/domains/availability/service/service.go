package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"eventbook/infras/otel"
	"eventbook/internal/domains/availability/model/dto"
	bookingModel "eventbook/internal/domains/booking/model"
	bookingRepo "eventbook/internal/domains/booking/repository"
	"eventbook/shared/constant"
	"eventbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Check(ctx context.Context, date string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo bookingRepo.Booking
	otel otel.Otel
}

func New(repo bookingRepo.Booking, otel otel.Otel) Availability {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Check reports whether no booking holds the calendar date written in date.
func (s *serviceImpl) Check(ctx context.Context, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(date) == constant.Empty {
		return res, bookingModel.ErrDateRequired
	}

	eventDate, err := timezone.ParseDate(date)
	if err != nil {
		return res, bookingModel.ErrInvalidEventDate
	}

	exist, err := s.repo.Exist(ctx, bookingModel.FilterByEventDate(eventDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	res.Available = !exist

	return res, nil
}
