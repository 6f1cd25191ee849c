package bikeshare

type columnSchema struct {
	TypeDescription     string
	PresenceDescription string
	Required            bool
}

const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colTripDuration = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

var tripSchema = map[string]columnSchema{
	colStartTime:    {TypeDescription: "Timestamp", PresenceDescription: "Required", Required: true},
	colEndTime:      {TypeDescription: "Timestamp", PresenceDescription: "Required", Required: true},
	colTripDuration: {TypeDescription: "Seconds", PresenceDescription: "Required", Required: true},
	colStartStation: {TypeDescription: "Text", PresenceDescription: "Required", Required: true},
	colEndStation:   {TypeDescription: "Text", PresenceDescription: "Required", Required: true},
	colUserType:     {TypeDescription: "Enum", PresenceDescription: "Required", Required: true},
	colGender:       {TypeDescription: "Enum", PresenceDescription: "Optional (chicago, new york city)"},
	colBirthYear:    {TypeDescription: "Year", PresenceDescription: "Optional (chicago, new york city)"},
}

// Columns computed from Start Time while staging. The combined trip label
// comes last so the raw-data window can leave it out.
const (
	colMonth     = "month"
	colDayOfWeek = "day_of_week"
	colWeekday   = "weekday"
	colHour      = "hour"
	colTrip      = "trip"
)

var derivedColumns = []string{colMonth, colDayOfWeek, colWeekday, colHour, colTrip}
