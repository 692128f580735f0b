package due

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Layout is the canonical text form of a due date. It sorts lexicographically
// in calendar order, which the store relies on for range queries.
const Layout = "2006-01-02T15:04:05"

const legacyLayout = "2006-01-02 15:04:05"

var ErrInvalidDate = errors.New("invalid date")

var validate = validator.New()

type components struct {
	Day    int `validate:"min=1,max=31"`
	Month  int `validate:"min=1,max=12"`
	Year   int `validate:"min=1,max=9998"`
	Hour   int `validate:"min=0,max=23"`
	Minute int `validate:"min=0,max=59"`
}

func Sentinel() time.Time {
	return time.Date(9999, time.December, 31, 0, 0, 0, 0, time.Local)
}

func IsSentinel(t time.Time) bool {
	return t.Equal(Sentinel())
}

func FromComponents(day, month, year, hour, minute int) (time.Time, error) {
	return fromComponentsIn(time.Local, day, month, year, hour, minute)
}

// fromComponentsIn rejects any wall-clock time that loc cannot represent
// as entered: impossible days and times skipped by a DST change.
func fromComponentsIn(loc *time.Location, day, month, year, hour, minute int) (time.Time, error) {
	fields := components{Day: day, Month: month, Year: year, Hour: hour, Minute: minute}
	if err := validate.Struct(fields); err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, describe(err))
	}

	value := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if value.Day() != day || int(value.Month()) != month || value.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %s has no day %d", ErrInvalidDate, time.Month(month), day)
	}
	if value.Hour() != hour || value.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: %02d:%02d does not exist on %s in %s", ErrInvalidDate, hour, minute, value.Format("2006-01-02"), loc)
	}
	return value, nil
}

func ParseComponents(day, month, year, hour, minute string) (time.Time, error) {
	raw := []string{day, month, year, hour, minute}
	values := make([]int, len(raw))
	for i, value := range raw {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not a number", ErrInvalidDate, value)
		}
		values[i] = parsed
	}
	return FromComponents(values[0], values[1], values[2], values[3], values[4])
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range []string{Layout, legacyLayout, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999"} {
		if parsed, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidDate, value)
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s must be %s %s", strings.ToLower(fieldErr.Field()), boundWord(fieldErr.Tag()), fieldErr.Param()))
	}
	return strings.Join(parts, ", ")
}

func boundWord(tag string) string {
	if tag == "max" {
		return "at most"
	}
	return "at least"
}
