package components

const (
	CardWidth  = 32 // inner width of a week card
	CardHeight = 4  // stars, weeks, price, detail
	CardGap    = 2  // columns between cards

	FieldWidth = 26 // date box width

	WheelColumnGap   = 1
	DayColumnWidth   = 6
	MonthColumnWidth = 13
	YearColumnWidth  = 8

	ButtonGap = 2
)

// NavTabs are the site sections shown in the navbar; the booking page lives
// under PROGRAMS & SERVICES.
var NavTabs = []string{"HOME", "PROGRAMS & SERVICES", "ABOUT", "CONTACT"}

// NavActiveTab is the index of the booking page in NavTabs
const NavActiveTab = 1
