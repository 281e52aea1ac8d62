package domain

import (
	"fmt"
	"strings"
)

// Tab вкладка списка агендаментов. Принадлежность вычисляется по статусу
// и нигде не хранится.
type Tab string

const (
	TabAll        Tab = "all"
	TabRequested  Tab = "requested"
	TabScheduled  Tab = "scheduled"
	TabInProgress Tab = "in_progress"
	TabCompleted  Tab = "completed"
	TabCancelled  Tab = "cancelled"
)

var AllTabs = []Tab{TabAll, TabRequested, TabScheduled, TabInProgress, TabCompleted, TabCancelled}

// ParseTab пустая строка означает TabAll
func ParseTab(raw string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TabAll, nil
	}
	for _, known := range AllTabs {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, raw)
}

// Matches предикат вкладки над статусом
func (t Tab) Matches(s Status) bool {
	switch t {
	case TabAll:
		return true
	case TabRequested:
		return s == StatusPending
	case TabScheduled:
		return s == StatusAccepted || s == StatusConfirmed
	case TabInProgress:
		return s == StatusConfirmed
	case TabCompleted:
		return s == StatusCompleted
	case TabCancelled:
		return s == StatusCancelled || s == StatusDeclined
	default:
		return false
	}
}

// FilterByTab возвращает агендаменты вкладки, сохраняя порядок
func FilterByTab(bookings []Booking, tab Tab) []Booking {
	result := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if tab.Matches(b.Status) {
			result = append(result, b)
		}
	}
	return result
}

// TabCounts количество агендаментов на каждой вкладке
func TabCounts(bookings []Booking) map[Tab]int {
	counts := make(map[Tab]int, len(AllTabs))
	for _, tab := range AllTabs {
		counts[tab] = 0
	}
	for _, b := range bookings {
		for _, tab := range AllTabs {
			if tab.Matches(b.Status) {
				counts[tab]++
			}
		}
	}
	return counts
}
