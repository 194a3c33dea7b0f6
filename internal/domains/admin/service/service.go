package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"eventbook/config"
	"eventbook/infras/otel"
	"eventbook/infras/s3"
	"eventbook/internal/domains/admin/model/dto"
	"eventbook/internal/domains/booking/event"
	bookingModel "eventbook/internal/domains/booking/model"
	bookingDto "eventbook/internal/domains/booking/model/dto"
	bookingRepo "eventbook/internal/domains/booking/repository"
	"eventbook/shared/background"
	"eventbook/shared/constant"
	gDto "eventbook/shared/dto"
	gRepo "eventbook/shared/repository"
	"eventbook/shared/timezone"
	"eventbook/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	ExportFileName      = "bookings-export.csv"
	exportArchivePrefix = "bookings-export-"
	exportArchiveLayout = "20060102T150405"
)

var exportHeader = []string{
	"Event Date",
	"Event Type",
	"Customer Name",
	"Customer Email",
	"Customer Phone",
	"Booking Date",
}

type Admin interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Export(ctx context.Context) (dto.ExportFile, error)
	Get(ctx context.Context, id int64) (dto.BookingView, error)
	Update(ctx context.Context, id int64, req bookingDto.UpdateBookingRequest) error
	Cancel(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      bookingRepo.Booking
	publisher event.Publisher
	storage   s3.S3
	cfg       *config.Config
	otel      otel.Otel
	tasks     *background.Group
}

func New(
	repo bookingRepo.Booking,
	publisher event.Publisher,
	storage s3.S3,
	cfg *config.Config,
	otel otel.Otel,
	tasks *background.Group,
) Admin {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		storage:   storage,
		cfg:       cfg,
		otel:      otel,
		tasks:     tasks,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, bookingModel.OrderByEventDate(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for dashboard")

		return res, fmt.Errorf("failed to get bookings for dashboard: %w", err)
	}

	res.FromModels(models, timezone.Today())

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context) (res dto.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, bookingModel.OrderByEventDate(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return res, fmt.Errorf("failed to get bookings for export: %w", err)
	}

	content, err := writeCSV(models)
	if err != nil {
		log.Error().Err(err).Msg("failed to write bookings csv")

		return res, fmt.Errorf("failed to write bookings csv: %w", err)
	}

	res.FileName = ExportFileName
	res.Content = content

	if s.storage.Enabled() {
		archiveName := exportArchivePrefix + timezone.Now().Format(exportArchiveLayout) + ".csv"

		s.tasks.Go(func() {
			c := context.WithoutCancel(ctx)

			url, err := s.storage.UploadFileBytes(c, constant.Empty, s.cfg.External.S3.ExportDirectory, archiveName, constant.ContentTypeCSV, content)
			if err != nil {
				log.Error().Err(err).Str("file", archiveName).Msg("failed to archive bookings export")

				return
			}

			log.Info().Str("url", url).Msg("bookings export archived")
		})
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, bookingModel.FilterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, bookingModel.ErrBookingNotFound
	}

	res.FromModel(booking, timezone.Today())

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req bookingDto.UpdateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return bookingModel.ErrMissingFields
	}

	eventDate, hasDate, err := req.ParseEventDate()
	if err != nil {
		return err // nolint:wrapcheck
	}

	var newDate *time.Time

	if hasDate {
		var taken bool

		taken, err = s.repo.Exist(ctx, bookingModel.FilterByEventDateExcluding(eventDate, id))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to check event date")

			return fmt.Errorf("failed to check event date: %w", err)
		}

		if taken {
			return bookingModel.ErrDateTakenByOther
		}

		newDate = &eventDate
	}

	affected, err := s.repo.Update(ctx, req.ToFields(newDate), bookingModel.FilterByID(id))
	if gRepo.IsUniqueViolation(err) {
		log.Warn().Int64("id", id).Msg("event date taken by a concurrent booking")

		return bookingModel.ErrDateTakenByOther
	}

	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if affected == 0 {
		return bookingModel.ErrBookingNotFound
	}

	updated, err := s.repo.Get(ctx, bookingModel.FilterByID(id))
	if err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("failed to reload updated booking")

		return nil
	}

	s.publisher.Publish(ctx, event.TypeBookingUpdated, updated)

	return nil
}

// Cancel deletes the booking. Cancelling an unknown id succeeds.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.Delete(ctx, bookingModel.FilterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if len(deleted) == 0 {
		log.Warn().Int64("id", id).Msg("cancelled booking did not exist")

		return nil
	}

	s.publisher.Publish(ctx, event.TypeBookingCancelled, deleted[0])

	return nil
}

func writeCSV(models []bookingModel.Booking) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, m := range models {
		phone := constant.Empty
		if m.CustomerPhone != nil {
			phone = *m.CustomerPhone
		}

		record := []string{
			m.EventDate.Format(constant.LocalDateFormat),
			m.EventType,
			m.CustomerName,
			m.CustomerEmail,
			phone,
			timezone.Format(m.CreatedAt, constant.LocalDateFormat),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
