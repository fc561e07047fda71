package civil

// ISOWeek returns the ISO-8601 week-based-year and week number for the
// date. Week 1 is the first Monday-based week whose Thursday falls in the
// calendar year, so up to three days at either end of a year belong to the
// neighbouring week-based-year.
func (d Date) ISOWeek() (weekYear, week int) {
	return d.isoWeekYear(), d.isoWeekNumber()
}

func (d Date) isoWeekNumber() int {
	dow0 := d.Weekday() - 1
	doy0 := d.DayOfYear() - 1
	doyThu0 := doy0 + (3 - dow0) // shift to the Thursday of this week
	alignedWeek := doyThu0 / 7
	firstThuDoy0 := doyThu0 - alignedWeek*7
	firstMonDoy0 := firstThuDoy0 - 3
	if firstMonDoy0 < -3 {
		firstMonDoy0 += 7
	}
	if doy0 < firstMonDoy0 {
		// Belongs to the last week of the previous week-based-year.
		return weeksInWeekYear(int(d.year) - 1)
	}
	week := (doy0-firstMonDoy0)/7 + 1
	if week == 53 {
		// Week 53 exists only when Jan 1 is a Thursday, or a Wednesday
		// in a leap year; otherwise this is week 1 of the next year.
		if !(firstMonDoy0 == -3 || (firstMonDoy0 == -2 && d.IsLeapYear())) {
			week = 1
		}
	}
	return week
}

func (d Date) isoWeekYear() int {
	year := int(d.year)
	doy := d.DayOfYear()
	if doy <= 3 {
		dow0 := d.Weekday() - 1
		if doy-dow0 < -2 {
			year--
		}
	} else if doy >= 363 {
		dow0 := d.Weekday() - 1
		adjusted := doy - 363
		if d.IsLeapYear() {
			adjusted--
		}
		if adjusted-dow0 >= 0 {
			year++
		}
	}
	return year
}

// weeksInWeekYear returns 52 or 53, the number of weeks in the given
// week-based-year.
func weeksInWeekYear(weekYear int) int {
	jan1 := clampDay(weekYear, 1, 1)
	if dow := jan1.Weekday(); dow == 4 || (dow == 3 && jan1.IsLeapYear()) {
		return 53
	}
	return 52
}
