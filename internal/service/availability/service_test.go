package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

type fakeAPI struct {
	stored    []domain.Availability
	updates   int
	getErr    error
	updateErr error
}

func (f *fakeAPI) GetAvailability(ctx context.Context, token string) ([]domain.Availability, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeAPI) UpdateAvailability(ctx context.Context, token string, slots []domain.Availability) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.stored = append([]domain.Availability(nil), slots...)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet_GroupsByWeekday(t *testing.T) {
	api := &fakeAPI{stored: []domain.Availability{
		{Weekday: 1, StartTime: "14:00", EndTime: "18:00"},
		{Weekday: 1, StartTime: "08:00", EndTime: "12:00"},
		{Weekday: 0, StartTime: "09:00", EndTime: "11:00"},
	}}

	week, err := NewService(api, nopLogger{}).Get(context.Background(), "tok")
	require.NoError(t, err)

	require.Len(t, week.Days, 7)
	assert.Equal(t, "Domingo", week.Days[0].Name)
	assert.Len(t, week.Days[0].Slots, 1)
	require.Len(t, week.Days[1].Slots, 2)
	assert.Equal(t, "08:00", week.Days[1].Slots[0].StartTime)
	assert.Empty(t, week.Days[6].Slots)
	assert.Equal(t, 0, week.Slots[0].Weekday)
}

func TestUpdate_RejectsInvalidWeekWithoutCallingAPI(t *testing.T) {
	tests := []struct {
		name  string
		slots []domain.Availability
	}{
		{"bad time", []domain.Availability{{Weekday: 1, StartTime: "8h", EndTime: "12:00"}}},
		{"start after end", []domain.Availability{{Weekday: 1, StartTime: "18:00", EndTime: "08:00"}}},
		{"weekday out of range", []domain.Availability{{Weekday: 7, StartTime: "08:00", EndTime: "12:00"}}},
		{"overlap", []domain.Availability{
			{Weekday: 2, StartTime: "08:00", EndTime: "12:00"},
			{Weekday: 2, StartTime: "11:00", EndTime: "13:00"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			_, err := NewService(api, nopLogger{}).Update(context.Background(), "tok", tt.slots)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.True(t, IsInvalid(err))
			assert.Zero(t, api.updates)
		})
	}
}

func TestUpdate_SavesAndRefetches(t *testing.T) {
	api := &fakeAPI{}
	week, err := NewService(api, nopLogger{}).Update(context.Background(), "tok", []domain.Availability{
		{Weekday: 3, StartTime: " 08:00", EndTime: "12:00 "},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, api.updates)
	require.Len(t, week.Slots, 1)
	assert.Equal(t, "08:00", week.Slots[0].StartTime)
	assert.Equal(t, "12:00", week.Slots[0].EndTime)
}

func TestUpdate_APIError(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAPI{updateErr: boom}

	_, err := NewService(api, nopLogger{}).Update(context.Background(), "tok", nil)
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsInvalid(err))
}
