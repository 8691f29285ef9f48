package service

import (
	"context"
	"math"

	"nirvanica/internal/domains/booking/model"
	"nirvanica/internal/domains/booking/model/dto"
	"nirvanica/shared/timezone"
)

// DashboardStats recomputes the dashboard figures from the full ledger.
// CurrentGuests counts checked-in bookings, and occupancy is that count's
// share of the total room inventory.
func (l *ledgerImpl) DashboardStats(ctx context.Context) dto.DashboardStats {
	_, scope := l.otel.NewScope(ctx, scopeName, scopeName+".DashboardStats")
	defer scope.End()

	today := timezone.Now()
	totalRooms := l.catalog.TotalRooms()

	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := dto.DashboardStats{
		TotalBookings: len(l.records),
		TotalRooms:    totalRooms,
	}

	inHouse := 0

	for i := range l.records {
		record := &l.records[i]

		switch record.Status {
		case model.StatusConfirmed:
			if timezone.SameCalendarDay(record.CheckIn, today) {
				stats.TodayArrivals++
				stats.TodayRevenue += record.TotalAmount
			}
		case model.StatusCheckedIn:
			inHouse++
			if timezone.SameCalendarDay(record.CheckIn, today) {
				stats.TodayArrivals++
			}
			if timezone.SameCalendarDay(record.CheckOut, today) {
				stats.TodayCheckouts++
			}
		}
	}

	stats.CurrentGuests = inHouse
	if totalRooms > 0 {
		stats.OccupancyPercent = int(math.Round(float64(inHouse) / float64(totalRooms) * 100))
	}

	return stats
}
