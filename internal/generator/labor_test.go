package generator

import (
	"testing"
	"time"

	"github.com/bistroboard/demogen/internal/utils"
)

func TestDeriveLaborFloors(t *testing.T) {
	p := DefaultParams("store-001", 7, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	id := utils.NewIdentity(p.Identity)

	t.Run("weekday floor binds on a dead day", func(t *testing.T) {
		rec := DayRecord{
			Date:       time.Date(2026, 6, 24, 0, 0, 0, 0, time.UTC), // Wednesday
			SalesLevel: utils.Dollars(500),
		}
		l := deriveLabor(&p, id, rec)
		if l.ScheduledHours != p.WeekdayMinHours {
			t.Errorf("scheduled = %v, want floor %v", l.ScheduledHours, p.WeekdayMinHours)
		}
	})

	t.Run("weekend floor is higher", func(t *testing.T) {
		rec := DayRecord{
			Date:       time.Date(2026, 6, 27, 0, 0, 0, 0, time.UTC), // Saturday
			Weekend:    true,
			SalesLevel: utils.Dollars(500),
		}
		l := deriveLabor(&p, id, rec)
		if l.ScheduledHours != p.WeekendMinHours {
			t.Errorf("scheduled = %v, want floor %v", l.ScheduledHours, p.WeekendMinHours)
		}
	})

	t.Run("busy day scales past the floor", func(t *testing.T) {
		rec := DayRecord{
			Date:       time.Date(2026, 6, 24, 0, 0, 0, 0, time.UTC),
			SalesLevel: utils.Dollars(12000),
		}
		l := deriveLabor(&p, id, rec)
		if l.ScheduledHours <= p.WeekdayMinHours {
			t.Errorf("scheduled = %v, expected above floor %v", l.ScheduledHours, p.WeekdayMinHours)
		}
		if l.Headcount < 1 {
			t.Errorf("headcount = %d, want >= 1", l.Headcount)
		}
		if l.OvertimeHours < 0 {
			t.Errorf("overtime = %v, want non-negative", l.OvertimeHours)
		}
	})
}
