package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	timeOfDayLayout     = "15:04"
	timeOfDayFullLayout = "15:04:05"
)

// TimeOfDay is a wall-clock time without a date, such as a library's
// opening hour. Its JSON form is "HH:MM" and it is stored as "HH:MM:SS".
type TimeOfDay struct {
	t time.Time
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{t: time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)}
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{timeOfDayLayout, timeOfDayFullLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{t: t}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
}

func (td TimeOfDay) Hour() int   { return td.t.Hour() }
func (td TimeOfDay) Minute() int { return td.t.Minute() }

func (td TimeOfDay) String() string {
	return td.t.Format(timeOfDayLayout)
}

func (td TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + td.String() + `"`), nil
}

func (td *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*td = parsed
	return nil
}

// Value implements driver.Valuer.
func (td TimeOfDay) Value() (driver.Value, error) {
	return td.t.Format(timeOfDayFullLayout), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as time.Time
// or string depending on the driver; SQLite hands back the stored text.
func (td *TimeOfDay) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		td.t = time.Date(0, 1, 1, v.Hour(), v.Minute(), v.Second(), 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*td = parsed
		return nil
	case []byte:
		return td.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}

// GormDataType tells the migrator to use a TIME column.
func (TimeOfDay) GormDataType() string {
	return "time"
}
