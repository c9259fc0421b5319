package report_test

import (
	"context"
	"errors"
	"testing"

	appreport "github.com/muhammadheryan/railway-reservation/application/report"
	"github.com/muhammadheryan/railway-reservation/constant"
	bookingmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/booking"
	reportmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/report"
	trainmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/train"
	usermocks "github.com/muhammadheryan/railway-reservation/mocks/repository/user"
	"github.com/muhammadheryan/railway-reservation/model"
	cerr "github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportApp_DailyReport(t *testing.T) {
	type fields struct {
		reportRepo *reportmocks.ReportRepository
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		want     []model.DailyReportItem
		wantErr  bool
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.reportRepo.On("Daily", mock.Anything).Return([]model.DailyReportItem{
					{Date: "2025-12-02", Bookings: 3, Revenue: 7500},
					{Date: "2025-12-01", Bookings: 1, Revenue: 500},
				}, nil).Once()
			},
			want: []model.DailyReportItem{
				{Date: "2025-12-02", Bookings: 3, Revenue: 7500},
				{Date: "2025-12-01", Bookings: 1, Revenue: 500},
			},
		},
		{
			name: "error: query fails",
			mockCall: func(f fields) {
				f.reportRepo.On("Daily", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{reportRepo: reportmocks.NewReportRepository(t)}
			tt.mockCall(f)
			app := appreport.NewReportApp(f.reportRepo, trainmocks.NewTrainRepository(t), bookingmocks.NewBookingRepository(t), usermocks.NewUserRepository(t))

			got, err := app.DailyReport(context.Background())
			if tt.wantErr {
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, constant.ErrInternal, ce.Type())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportApp_Dashboard(t *testing.T) {
	trainRepo := trainmocks.NewTrainRepository(t)
	bookingRepo := bookingmocks.NewBookingRepository(t)
	userRepo := usermocks.NewUserRepository(t)
	trainRepo.On("Count", mock.Anything).Return(int64(4), nil).Once()
	bookingRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
	userRepo.On("Count", mock.Anything).Return(int64(9), nil).Once()

	app := appreport.NewReportApp(reportmocks.NewReportRepository(t), trainRepo, bookingRepo, userRepo)
	got, err := app.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.DashboardSummary{TotalTrains: 4, TotalBookings: 12, TotalUsers: 9}, got)
}
