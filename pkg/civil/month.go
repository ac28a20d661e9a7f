package civil

// Month is a month of the year, January = 1 through December = 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// NewMonth validates n and returns the corresponding Month.
func NewMonth(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, rangeError("month", int64(n), 1, 12)
	}
	return Month(n), nil
}

// Next returns the month after m, wrapping from December to January.
func (m Month) Next() Month {
	if m == December {
		return January
	}
	return m + 1
}

// Previous returns the month before m, wrapping from January to December.
func (m Month) Previous() Month {
	if m == January {
		return December
	}
	return m - 1
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return "Month(invalid)"
	}
	return monthNames[m-1]
}
