package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTab_ConfirmedMembership(t *testing.T) {
	assert.True(t, TabScheduled.Matches(StatusConfirmed))
	assert.True(t, TabInProgress.Matches(StatusConfirmed))
	assert.False(t, TabRequested.Matches(StatusConfirmed))
	assert.False(t, TabCompleted.Matches(StatusConfirmed))
	assert.False(t, TabCancelled.Matches(StatusConfirmed))
}

func TestTab_Matches(t *testing.T) {
	want := map[Tab][]Status{
		TabRequested:  {StatusPending},
		TabScheduled:  {StatusAccepted, StatusConfirmed},
		TabInProgress: {StatusConfirmed},
		TabCompleted:  {StatusCompleted},
		TabCancelled:  {StatusCancelled, StatusDeclined},
		TabAll:        AllStatuses,
	}

	for tab, statuses := range want {
		for _, s := range AllStatuses {
			assert.Equal(t, contains(statuses, s), tab.Matches(s), "tab=%s status=%s", tab, s)
		}
	}
}

func contains(list []Status, s Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestFilterByTab(t *testing.T) {
	bookings := []Booking{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusConfirmed},
		{ID: "3", Status: StatusAccepted},
		{ID: "4", Status: StatusDeclined},
	}

	scheduled := FilterByTab(bookings, TabScheduled)
	require.Len(t, scheduled, 2)
	assert.Equal(t, ID("2"), scheduled[0].ID)
	assert.Equal(t, ID("3"), scheduled[1].ID)

	assert.Len(t, FilterByTab(bookings, TabAll), 4)
	assert.Empty(t, FilterByTab(bookings, TabCompleted))

	// фильтр не меняет статусы исходных данных
	assert.Equal(t, StatusConfirmed, bookings[1].Status)
}

func TestTabCounts(t *testing.T) {
	counts := TabCounts([]Booking{
		{Status: StatusPending},
		{Status: StatusConfirmed},
		{Status: StatusCancelled},
	})

	assert.Equal(t, 3, counts[TabAll])
	assert.Equal(t, 1, counts[TabRequested])
	assert.Equal(t, 1, counts[TabScheduled])
	assert.Equal(t, 1, counts[TabInProgress])
	assert.Equal(t, 0, counts[TabCompleted])
	assert.Equal(t, 1, counts[TabCancelled])
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, TabAll, tab)

	tab, err = ParseTab("In_Progress")
	require.NoError(t, err)
	assert.Equal(t, TabInProgress, tab)

	_, err = ParseTab("archived")
	assert.ErrorIs(t, err, ErrUnknownTab)
}
