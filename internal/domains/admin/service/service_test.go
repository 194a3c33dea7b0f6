package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventbook/config"
	otelMocks "eventbook/infras/otel/mocks"
	s3Mocks "eventbook/infras/s3/mocks"
	"eventbook/internal/domains/admin/service"
	"eventbook/internal/domains/booking/event"
	bookingMocks "eventbook/internal/domains/booking/mocks"
	bookingModel "eventbook/internal/domains/booking/model"
	bookingDto "eventbook/internal/domains/booking/model/dto"
	"eventbook/shared/background"
	"eventbook/shared/constant"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	publisher *bookingMocks.MockPublisher
	storage   *s3Mocks.MockS3
	tasks     *background.Group
	svc       service.Admin
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.External.S3.ExportDirectory = "exports"

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		publisher: bookingMocks.NewMockPublisher(ctrl),
		storage:   s3Mocks.NewMockS3(ctrl),
		tasks:     background.New(),
	}
	f.svc = service.New(f.repo, f.publisher, f.storage, cfg, otelMocks.NewOtel(), f.tasks)

	return f
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func phone(s string) *string {
	return &s
}

func sampleBookings() []bookingModel.Booking {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return []bookingModel.Booking{
		{
			ID:            1,
			EventDate:     date(2000, time.January, 5),
			EventType:     "Birthday",
			CustomerName:  "John",
			CustomerEmail: "john@example.com",
			CustomerPhone: phone("555-0100"),
			CreatedAt:     created,
		},
		{
			ID:            2,
			EventDate:     date(2999, time.December, 1),
			EventType:     "Wedding",
			CustomerName:  "Jane Doe",
			CustomerEmail: "jane@example.com",
			CreatedAt:     created,
		},
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), bookingModel.OrderByEventDate(), gomock.Any()).
		Return(sampleBookings(), nil)

	res, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.Total)
	assert.Equal(t, 1, res.Stats.Upcoming)
	assert.Equal(t, 1, res.Stats.Past)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "1/5/2000", res.Bookings[0].EventDate)
	assert.Equal(t, "555-0100", res.Bookings[0].CustomerPhone)
	assert.False(t, res.Bookings[0].Upcoming)
	assert.True(t, res.Bookings[1].Upcoming)
	assert.Empty(t, res.Bookings[1].CustomerPhone)
}

func TestAdminService_DashboardError(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := f.svc.Dashboard(context.Background())
	assert.Error(t, err)
}

func TestAdminService_Export(t *testing.T) {
	f := newFixture(t)

	bookings := sampleBookings()
	bookings[0].CustomerName = "Doe, John"

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookings, nil)
	f.storage.EXPECT().Enabled().Return(false)

	res, err := f.svc.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, service.ExportFileName, res.FileName)
	assert.Equal(t,
		"Event Date,Event Type,Customer Name,Customer Email,Customer Phone,Booking Date\n"+
			"1/5/2000,Birthday,\"Doe, John\",john@example.com,555-0100,6/1/2025\n"+
			"12/1/2999,Wedding,Jane Doe,jane@example.com,,6/1/2025\n",
		string(res.Content),
	)
}

func TestAdminService_ExportArchivesToStorage(t *testing.T) {
	f := newFixture(t)
	uploaded := make(chan string, 1)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{}, nil)
	f.storage.EXPECT().Enabled().Return(true)
	f.storage.EXPECT().
		UploadFileBytes(gomock.Any(), "", "exports", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, _ []byte) (string, error) {
			uploaded <- fileName

			return "s3://bucket/exports/" + fileName, nil
		})

	res, err := f.svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Event Date,Event Type,Customer Name,Customer Email,Customer Phone,Booking Date\n", string(res.Content))

	require.NoError(t, f.tasks.Close())

	select {
	case name := <-uploaded:
		assert.Regexp(t, `^bookings-export-\d{8}T\d{6}\.csv$`, name)
	default:
		t.Fatal("export was not archived before the task group drained")
	}
}

func TestAdminService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), bookingModel.FilterByID(2)).
		Return(sampleBookings()[1], nil)
	f.repo.EXPECT().
		Get(gomock.Any(), bookingModel.FilterByID(99)).
		Return(bookingModel.Booking{}, nil)
	f.repo.EXPECT().
		Get(gomock.Any(), bookingModel.FilterByID(3)).
		Return(bookingModel.Booking{}, errors.New("database error"))

	view, err := f.svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.ID)
	assert.Equal(t, "2999-12-01", view.EventDateValue)

	_, err = f.svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, bookingModel.ErrBookingNotFound)

	_, err = f.svc.Get(context.Background(), 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, bookingModel.ErrBookingNotFound)
}

func validUpdate() bookingDto.UpdateBookingRequest {
	return bookingDto.UpdateBookingRequest{
		EventDate:     "2026-05-10",
		EventType:     "Conference",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
	}
}

func TestAdminService_Update(t *testing.T) {
	newDate := date(2026, time.May, 10)

	tests := []struct {
		name      string
		req       bookingDto.UpdateBookingRequest
		setupMock func(f fixture)
		wantErr   error
		wantAny   bool
	}{
		{
			name: "successful update",
			req:  validUpdate(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), bookingModel.FilterByEventDateExcluding(newDate, 5)).
					Return(false, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), bookingModel.FilterByID(5)).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) (int64, error) {
						assert.Equal(t, "2026-05-10", fields[bookingModel.FieldEventDate])
						assert.Nil(t, fields[bookingModel.FieldCustomerPhone])

						return 1, nil
					})
				f.repo.EXPECT().
					Get(gomock.Any(), bookingModel.FilterByID(5)).
					Return(bookingModel.Booking{ID: 5, EventDate: newDate}, nil)
				f.publisher.EXPECT().
					Publish(gomock.Any(), event.TypeBookingUpdated, gomock.Any())
			},
		},
		{
			name: "blank date keeps the stored one",
			req: func() bookingDto.UpdateBookingRequest {
				req := validUpdate()
				req.EventDate = ""

				return req
			}(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), bookingModel.FilterByID(5)).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) (int64, error) {
						assert.NotContains(t, fields, bookingModel.FieldEventDate)

						return 1, nil
					})
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{ID: 5}, nil)
				f.publisher.EXPECT().
					Publish(gomock.Any(), event.TypeBookingUpdated, gomock.Any())
			},
		},
		{
			name: "date taken by another booking",
			req:  validUpdate(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: bookingModel.ErrDateTakenByOther,
		},
		{
			name: "concurrent booking wins the date",
			req:  validUpdate(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: "23505"})
			},
			wantErr: bookingModel.ErrDateTakenByOther,
		},
		{
			name: "unknown booking",
			req:  validUpdate(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: bookingModel.ErrBookingNotFound,
		},
		{
			name: "missing customer name",
			req: func() bookingDto.UpdateBookingRequest {
				req := validUpdate()
				req.CustomerName = ""

				return req
			}(),
			setupMock: func(fixture) {},
			wantErr:   bookingModel.ErrMissingFields,
		},
		{
			name: "invalid date",
			req: func() bookingDto.UpdateBookingRequest {
				req := validUpdate()
				req.EventDate = "10.05.2026"

				return req
			}(),
			setupMock: func(fixture) {},
			wantErr:   bookingModel.ErrInvalidEventDate,
		},
		{
			name: "repository error",
			req:  validUpdate(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), 5, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAny:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "deletes and publishes",
			setupMock: func(f fixture) {
				deleted := bookingModel.Booking{ID: 8, EventType: "Gala", CustomerName: "Jane Doe"}

				f.repo.EXPECT().Delete(gomock.Any(), bookingModel.FilterByID(8)).Return([]bookingModel.Booking{deleted}, nil)
				f.publisher.EXPECT().Publish(gomock.Any(), event.TypeBookingCancelled, deleted)
			},
		},
		{
			name: "unknown booking is a no-op",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{}, nil)
			},
		},
		{
			name: "delete error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Cancel(context.Background(), 8)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
