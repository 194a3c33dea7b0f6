package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"eventbook/infras/otel"
	"eventbook/internal/domains/booking/event"
	"eventbook/internal/domains/booking/model"
	"eventbook/internal/domains/booking/model/dto"
	"eventbook/internal/domains/booking/repository"
	"eventbook/shared/constant"
	gDto "eventbook/shared/dto"
	gRepo "eventbook/shared/repository"
	"eventbook/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.BookingsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, publisher event.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, model.ErrMissingFields
	}

	booking, err := req.ToModel()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	stored, err := s.repo.Insert(ctx, booking)
	if gRepo.IsUniqueViolation(err) {
		log.Warn().Str("event_date", booking.EventDate.Format(constant.DateOnlyFormat)).Msg("date already booked")

		return res, model.ErrDateAlreadyBooked
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publisher.Publish(ctx, event.TypeBookingCreated, stored)

	res.FromModel(stored)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, model.OrderByEventDate(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
