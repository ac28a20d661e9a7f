package civil

// Weekday is a day of the week. The zero value is Monday, matching the ISO
// week, which runs Monday through Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NumberFromMonday returns the ISO weekday number: Monday is 1, Sunday is 7.
func (d Weekday) NumberFromMonday() int {
	return int(d) + 1
}

// NumberFromSunday returns the weekday number with Sunday as 1 and Saturday
// as 7.
func (d Weekday) NumberFromSunday() int {
	if d == Sunday {
		return 1
	}
	return int(d) + 2
}

// DaysFromMonday returns the number of days since Monday: Monday is 0,
// Sunday is 6.
func (d Weekday) DaysFromMonday() int {
	return int(d)
}

// DaysFromSunday returns the number of days since Sunday: Sunday is 0,
// Saturday is 6.
func (d Weekday) DaysFromSunday() int {
	if d == Sunday {
		return 0
	}
	return int(d) + 1
}

// Next returns the weekday after d.
func (d Weekday) Next() Weekday {
	if d == Sunday {
		return Monday
	}
	return d + 1
}

// Previous returns the weekday before d.
func (d Weekday) Previous() Weekday {
	if d == Monday {
		return Sunday
	}
	return d - 1
}

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(invalid)"
	}
	return weekdayNames[d]
}
