package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventbook/infras/otel/mocks"
	"eventbook/internal/domains/availability/service"
	bookingMocks "eventbook/internal/domains/booking/mocks"
	bookingModel "eventbook/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	december := bookingModel.FilterByEventDate(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name          string
		date          string
		setupMock     func()
		wantAvailable bool
		wantErr       error
		wantAnyErr    bool
	}{
		{
			name: "free date",
			date: "2025-12-01",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), december).Return(false, nil)
			},
			wantAvailable: true,
		},
		{
			name: "booked date",
			date: "2025-12-01",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), december).Return(true, nil)
			},
		},
		{
			name: "timestamp resolves to its calendar date",
			date: "2025-12-01T20:00:00Z",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), december).Return(true, nil)
			},
		},
		{
			name:      "missing date",
			date:      "",
			setupMock: func() {},
			wantErr:   bookingModel.ErrDateRequired,
		},
		{
			name:      "invalid date",
			date:      "tomorrow",
			setupMock: func() {},
			wantErr:   bookingModel.ErrInvalidEventDate,
		},
		{
			name: "repository error",
			date: "2025-12-01",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Check(context.Background(), tt.date)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantAvailable, res.Available)
			}
		})
	}
}
