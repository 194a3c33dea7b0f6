package availability_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "eventbook/infras/otel/mocks"
	"eventbook/internal/domains/availability/model/dto"
	"eventbook/internal/domains/availability/service/mocks"
	bookingModel "eventbook/internal/domains/booking/model"
	"eventbook/internal/handlers/availability"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *mocks.MockAvailability)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "available",
			target: "/availability?date=2025-12-01",
			setupMock: func(svc *mocks.MockAvailability) {
				svc.EXPECT().Check(gomock.Any(), "2025-12-01").Return(dto.AvailabilityResponse{Available: true}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"available":true}`,
		},
		{
			name:   "booked",
			target: "/availability?date=2025-12-01",
			setupMock: func(svc *mocks.MockAvailability) {
				svc.EXPECT().Check(gomock.Any(), "2025-12-01").Return(dto.AvailabilityResponse{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"available":false}`,
		},
		{
			name:   "missing date",
			target: "/availability",
			setupMock: func(svc *mocks.MockAvailability) {
				svc.EXPECT().Check(gomock.Any(), "").Return(dto.AvailabilityResponse{}, bookingModel.ErrDateRequired)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Date query parameter is required"}`,
		},
		{
			name:   "store failure",
			target: "/availability?date=2025-12-01",
			setupMock: func(svc *mocks.MockAvailability) {
				svc.EXPECT().Check(gomock.Any(), gomock.Any()).Return(dto.AvailabilityResponse{}, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockAvailability(ctrl)
			tt.setupMock(svc)

			handler := availability.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
