package fhirpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date with year, month or day precision.
type Date struct {
	Value     time.Time
	Precision DatePrecision
	Type      TypeSpecifier
}

type DatePrecision string

const (
	DatePrecisionYear  DatePrecision = "year"
	DatePrecisionMonth DatePrecision = "month"
	DatePrecisionFull  DatePrecision = "full"
)

// DateTime is a point in time with any precision from year to
// millisecond. Values without timezone are stored in UTC with HasTimeZone
// unset.
type DateTime struct {
	Value       time.Time
	Precision   DateTimePrecision
	HasTimeZone bool
	Type        TypeSpecifier
}

type DateTimePrecision string

const (
	DateTimePrecisionYear        DateTimePrecision = "year"
	DateTimePrecisionMonth       DateTimePrecision = "month"
	DateTimePrecisionDay         DateTimePrecision = "day"
	DateTimePrecisionHour        DateTimePrecision = "hour"
	DateTimePrecisionMinute      DateTimePrecision = "minute"
	DateTimePrecisionSecond      DateTimePrecision = "second"
	DateTimePrecisionMillisecond DateTimePrecision = "millisecond"
)

// Time is a time of day with hour to millisecond precision. The date part
// of Value is always 0000-01-01 UTC.
type Time struct {
	Value     time.Time
	Precision TimePrecision
	Type      TypeSpecifier
}

type TimePrecision string

const (
	TimePrecisionHour        TimePrecision = "hour"
	TimePrecisionMinute      TimePrecision = "minute"
	TimePrecisionSecond      TimePrecision = "second"
	TimePrecisionMillisecond TimePrecision = "millisecond"
)

const (
	DateFormatOnlyYear   = "2006"
	DateFormatUpToMonth  = "2006-01"
	DateFormatFull       = "2006-01-02"
	TimeFormatOnlyHour   = "15"
	TimeFormatUpToMinute = "15:04"
	TimeFormatUpToSecond = "15:04:05"
	TimeFormatFull       = "15:04:05.000"
	TimeZoneFormat       = "Z07:00"
)

const (
	maxMillisecondNanoseconds = int(time.Millisecond * 999)
	minTimeZoneOffsetHours    = -12
	maxTimeZoneOffsetHours    = 14
	maxDateDigits             = 8
	maxDateTimeDigits         = 17
	maxTimeDigits             = 9
)

// Calendar levels shared by all temporal kinds. Seconds and milliseconds
// form a single level for comparison.
const (
	levelYear = iota
	levelMonth
	levelDay
	levelHour
	levelMinute
	levelSecond
	levelMillisecond
)

var (
	datePattern     = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)
	timePattern     = regexp.MustCompile(`^(\d{2})(?::(\d{2})(?::(\d{2})(?:\.(\d+))?)?)?$`)
	timeZonePattern = regexp.MustCompile(`(Z|[+-]\d{2}:\d{2})$`)
)

// ParseDate parses YYYY, YYYY-MM or YYYY-MM-DD, with an optional leading '@'.
func ParseDate(s string) (Date, error) {
	ds := strings.TrimPrefix(s, "@")
	year, month, day, level, ok := parseDateParts(ds)
	if !ok {
		return Date{}, fmt.Errorf("invalid Date format: %s", s)
	}
	precision := DatePrecisionFull
	switch level {
	case levelYear:
		precision = DatePrecisionYear
	case levelMonth:
		precision = DatePrecisionMonth
	}
	return Date{
		Value:     time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Precision: precision,
	}, nil
}

func parseDateParts(s string) (year, month, day, level int, ok bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, day, level = 1, 1, levelYear
	if m[2] != "" {
		month, _ = strconv.Atoi(m[2])
		level = levelMonth
		if month < 1 || month > 12 {
			return 0, 0, 0, 0, false
		}
	}
	if m[3] != "" {
		day, _ = strconv.Atoi(m[3])
		level = levelDay
		if day < 1 || day > daysIn(year, time.Month(month)) {
			return 0, 0, 0, 0, false
		}
	}
	return year, month, day, level, true
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseTime parses hh[:mm[:ss[.fff]]], with an optional leading '@T'.
func ParseTime(s string) (Time, error) {
	ts := strings.TrimPrefix(strings.TrimPrefix(s, "@"), "T")
	hour, min, sec, nsec, level, ok := parseTimeParts(ts)
	if !ok {
		return Time{}, fmt.Errorf("invalid Time format: %s", s)
	}
	return Time{
		Value:     time.Date(0, time.January, 1, hour, min, sec, nsec, time.UTC),
		Precision: timePrecisionForLevel(level),
	}, nil
}

func parseTimeParts(s string) (hour, min, sec, nsec, level int, ok bool) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	level = levelHour
	if m[2] != "" {
		min, _ = strconv.Atoi(m[2])
		level = levelMinute
	}
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
		level = levelSecond
	}
	if m[4] != "" {
		frac := (m[4] + "00")[:3]
		ms, _ := strconv.Atoi(frac)
		nsec = ms * int(time.Millisecond)
		level = levelMillisecond
	}
	if hour > 23 || min > 59 || sec > 59 {
		return 0, 0, 0, 0, 0, false
	}
	return hour, min, sec, nsec, level, true
}

// ParseDateTime parses a date, optionally followed by 'T', a time and a
// timezone. A date without time yields a DateTime of date precision.
func ParseDateTime(s string) (DateTime, error) {
	ds, ts, hasT := strings.Cut(strings.TrimPrefix(s, "@"), "T")
	year, month, day, dateLevel, ok := parseDateParts(ds)
	if !ok {
		return DateTime{}, fmt.Errorf("invalid DateTime format (date part): %s", s)
	}
	if !hasT || ts == "" {
		return DateTime{
			Value:     time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
			Precision: dateTimePrecisionForLevel(dateLevel),
		}, nil
	}
	if dateLevel != levelDay {
		return DateTime{}, fmt.Errorf("invalid DateTime format (time without full date): %s", s)
	}

	loc := time.UTC
	hasTimeZone := false
	if tz := timeZonePattern.FindString(ts); tz != "" {
		ts = strings.TrimSuffix(ts, tz)
		hasTimeZone = true
		if tz != "Z" {
			hours, _ := strconv.Atoi(tz[1:3])
			minutes, _ := strconv.Atoi(tz[4:6])
			offset := hours*3600 + minutes*60
			if tz[0] == '-' {
				offset = -offset
			}
			loc = time.FixedZone("", offset)
		}
	}
	hour, min, sec, nsec, timeLevel, ok := parseTimeParts(ts)
	if !ok {
		return DateTime{}, fmt.Errorf("invalid DateTime format (time part): %s", s)
	}
	return DateTime{
		Value:       time.Date(year, time.Month(month), day, hour, min, sec, nsec, loc),
		Precision:   dateTimePrecisionForLevel(timeLevel),
		HasTimeZone: hasTimeZone,
	}, nil
}

func dateTimePrecisionForLevel(level int) DateTimePrecision {
	switch level {
	case levelYear:
		return DateTimePrecisionYear
	case levelMonth:
		return DateTimePrecisionMonth
	case levelDay:
		return DateTimePrecisionDay
	case levelHour:
		return DateTimePrecisionHour
	case levelMinute:
		return DateTimePrecisionMinute
	case levelSecond:
		return DateTimePrecisionSecond
	default:
		return DateTimePrecisionMillisecond
	}
}

func timePrecisionForLevel(level int) TimePrecision {
	switch level {
	case levelHour:
		return TimePrecisionHour
	case levelMinute:
		return TimePrecisionMinute
	case levelSecond:
		return TimePrecisionSecond
	default:
		return TimePrecisionMillisecond
	}
}

func datePrecisionLevel(p DatePrecision) int {
	switch p {
	case DatePrecisionYear:
		return levelYear
	case DatePrecisionMonth:
		return levelMonth
	default:
		return levelDay
	}
}

func dateTimePrecisionLevel(p DateTimePrecision) int {
	switch p {
	case DateTimePrecisionYear:
		return levelYear
	case DateTimePrecisionMonth:
		return levelMonth
	case DateTimePrecisionDay:
		return levelDay
	case DateTimePrecisionHour:
		return levelHour
	case DateTimePrecisionMinute:
		return levelMinute
	case DateTimePrecisionSecond:
		return levelSecond
	default:
		return levelMillisecond
	}
}

func timePrecisionLevel(p TimePrecision) int {
	switch p {
	case TimePrecisionHour:
		return levelHour
	case TimePrecisionMinute:
		return levelMinute
	case TimePrecisionSecond:
		return levelSecond
	default:
		return levelMillisecond
	}
}

func (d Date) String() string {
	switch d.Precision {
	case DatePrecisionYear:
		return d.Value.Format(DateFormatOnlyYear)
	case DatePrecisionMonth:
		return d.Value.Format(DateFormatUpToMonth)
	default:
		return d.Value.Format(DateFormatFull)
	}
}

// String renders the value as it would appear after '@' in a literal. Date
// precision values keep the trailing 'T' that marks them as DateTime.
func (dt DateTime) String() string {
	level := dateTimePrecisionLevel(dt.Precision)
	if level <= levelDay {
		date := Date{Value: dt.Value, Precision: DatePrecisionFull}
		switch level {
		case levelYear:
			date.Precision = DatePrecisionYear
		case levelMonth:
			date.Precision = DatePrecisionMonth
		}
		return date.String() + "T"
	}
	ts := formatClock(dt.Value, level)
	if dt.HasTimeZone {
		ts += dt.Value.Format(TimeZoneFormat)
	}
	return dt.Value.Format(DateFormatFull) + "T" + ts
}

func (t Time) String() string {
	return formatClock(t.Value, timePrecisionLevel(t.Precision))
}

func formatClock(t time.Time, level int) string {
	switch level {
	case levelHour:
		return t.Format(TimeFormatOnlyHour)
	case levelMinute:
		return t.Format(TimeFormatUpToMinute)
	case levelSecond:
		return t.Format(TimeFormatUpToSecond)
	default:
		return t.Format(TimeFormatFull)
	}
}

// ToDateTime widens a Date to a DateTime of the same precision.
func (d Date) ToDateTime() DateTime {
	return DateTime{
		Value:     d.Value,
		Precision: dateTimePrecisionForLevel(datePrecisionLevel(d.Precision)),
	}
}

// ToDate truncates a DateTime to its date part.
func (dt DateTime) ToDate() Date {
	level := dateTimePrecisionLevel(dt.Precision)
	precision := DatePrecisionFull
	switch {
	case level == levelYear:
		precision = DatePrecisionYear
	case level == levelMonth:
		precision = DatePrecisionMonth
	}
	year, month, day := dt.Value.Date()
	return Date{Value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Precision: precision}
}

// TimeOfDay returns the time part of a DateTime with at least hour
// precision.
func (dt DateTime) TimeOfDay() (Time, bool) {
	level := dateTimePrecisionLevel(dt.Precision)
	if level < levelHour {
		return Time{}, false
	}
	hour, min, sec := dt.Value.Clock()
	return Time{
		Value:     time.Date(0, time.January, 1, hour, min, sec, dt.Value.Nanosecond(), time.UTC),
		Precision: timePrecisionForLevel(level),
	}, true
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func component(t time.Time, level int) int {
	switch level {
	case levelYear:
		return t.Year()
	case levelMonth:
		return int(t.Month())
	case levelDay:
		return t.Day()
	case levelHour:
		return t.Hour()
	case levelMinute:
		return t.Minute()
	default:
		return t.Second()*1000 + t.Nanosecond()/int(time.Millisecond)
	}
}

// compareAtLevels compares a and b component by component from level from
// up to the coarser of the two precisions. ok is false when the values are
// equal up to that point but the precisions differ.
func compareAtLevels(a, b time.Time, from, levelA, levelB int) (cmp int, ok bool) {
	levelA, levelB = min(levelA, levelSecond), min(levelB, levelSecond)
	common := min(levelA, levelB)
	for level := from; level <= common; level++ {
		if c := compareInts(component(a, level), component(b, level)); c != 0 {
			return c, true
		}
	}
	if levelA != levelB {
		return 0, false
	}
	return 0, true
}

// Cmp compares two dates. ok is false when the result is undetermined
// because of differing precision.
func (d Date) Cmp(o Date) (cmp int, ok bool) {
	return compareAtLevels(d.Value, o.Value, levelYear, datePrecisionLevel(d.Precision), datePrecisionLevel(o.Precision))
}

// Cmp compares two date times. Values that both carry a time but only one
// of which has a timezone are incomparable.
func (dt DateTime) Cmp(o DateTime) (cmp int, ok bool) {
	levelA, levelB := dateTimePrecisionLevel(dt.Precision), dateTimePrecisionLevel(o.Precision)
	a, b := dt.Value, o.Value
	if levelA >= levelHour && levelB >= levelHour {
		if dt.HasTimeZone != o.HasTimeZone {
			return 0, false
		}
		a, b = a.UTC(), b.UTC()
	}
	return compareAtLevels(a, b, levelYear, levelA, levelB)
}

func (t Time) Cmp(o Time) (cmp int, ok bool) {
	return compareAtLevels(t.Value, o.Value, levelHour, timePrecisionLevel(t.Precision), timePrecisionLevel(o.Precision))
}

// compareTemporal compares two temporal values of compatible kinds. A Date
// compared to a DateTime is widened first.
func compareTemporal(a, b Value) (cmp int, ok bool, err error) {
	switch l := a.(type) {
	case Date:
		switch r := b.(type) {
		case Date:
			cmp, ok = l.Cmp(r)
			return cmp, ok, nil
		case DateTime:
			cmp, ok = l.ToDateTime().Cmp(r)
			return cmp, ok, nil
		}
	case DateTime:
		switch r := b.(type) {
		case Date:
			cmp, ok = l.Cmp(r.ToDateTime())
			return cmp, ok, nil
		case DateTime:
			cmp, ok = l.Cmp(r)
			return cmp, ok, nil
		}
	case Time:
		if r, isTime := b.(Time); isTime {
			cmp, ok = l.Cmp(r)
			return cmp, ok, nil
		}
	}
	return 0, false, newError(TypeError, "can not compare %s to %s", TypeOf(a), TypeOf(b))
}

// Time units for date/time arithmetic, in canonical singular form.
const (
	UnitYear        = "year"
	UnitMonth       = "month"
	UnitWeek        = "week"
	UnitDay         = "day"
	UnitHour        = "hour"
	UnitMinute      = "minute"
	UnitSecond      = "second"
	UnitMillisecond = "millisecond"
)

// normalizeTimeUnit maps calendar keywords and the definite UCUM duration
// units onto the canonical singular keyword. Other units are returned
// unchanged.
func normalizeTimeUnit(unit string) string {
	switch unit {
	case "year", "years":
		return UnitYear
	case "month", "months":
		return UnitMonth
	case "week", "weeks", "wk":
		return UnitWeek
	case "day", "days", "d":
		return UnitDay
	case "hour", "hours", "h":
		return UnitHour
	case "minute", "minutes", "min":
		return UnitMinute
	case "second", "seconds", "s":
		return UnitSecond
	case "millisecond", "milliseconds", "ms":
		return UnitMillisecond
	}
	return unit
}

func timeUnitLevel(unit string) (int, bool) {
	switch unit {
	case UnitYear:
		return levelYear, true
	case UnitMonth:
		return levelMonth, true
	case UnitWeek, UnitDay:
		return levelDay, true
	case UnitHour:
		return levelHour, true
	case UnitMinute:
		return levelMinute, true
	case UnitSecond:
		return levelSecond, true
	case UnitMillisecond:
		return levelMillisecond, true
	}
	return 0, false
}

// millisPerUnit holds the definite durations below a day.
var millisPerUnit = map[string]int64{
	UnitWeek:        7 * 24 * 3600 * 1000,
	UnitDay:         24 * 3600 * 1000,
	UnitHour:        3600 * 1000,
	UnitMinute:      60 * 1000,
	UnitSecond:      1000,
	UnitMillisecond: 1,
}

// shiftTime adds amount (negative to subtract) of the given calendar unit
// to t. Units finer than precision are converted to the precision and the
// remainder dropped.
func shiftTime(t time.Time, q Quantity, negate bool, precision int) (time.Time, error) {
	unit := normalizeTimeUnit(q.Unit)
	unitLevel, ok := timeUnitLevel(unit)
	if !ok {
		return time.Time{}, newError(TypeError, "invalid time unit: %s", q.Unit)
	}

	value, err := q.Value.Float64()
	if err != nil {
		return time.Time{}, wrapError(InvalidArgument, err, "invalid quantity value for date arithmetic")
	}
	if negate {
		value = -value
	}

	precision = min(precision, levelMillisecond)
	if unitLevel > precision {
		switch {
		case unit == UnitMonth && precision == levelYear:
			return addMonths(t, int64(value)/12*12), nil
		case unit != UnitMonth && unit != UnitYear && precision >= levelDay:
			target := precisionUnit(precision)
			amount := int64(value*float64(millisPerUnit[unit])) / millisPerUnit[target]
			return shiftTime(t, Quantity{Value: decimalFromInt(amount), Unit: target}, false, precision)
		}
	}

	switch unit {
	case UnitYear:
		return addMonths(t, int64(value)*12), nil
	case UnitMonth:
		return addMonths(t, int64(value)), nil
	case UnitWeek:
		return t.AddDate(0, 0, int(value)*7), nil
	case UnitDay:
		return t.AddDate(0, 0, int(value)), nil
	}
	millis := int64(value * float64(millisPerUnit[unit]))
	return t.Add(time.Duration(millis) * time.Millisecond), nil
}

func precisionUnit(level int) string {
	switch level {
	case levelYear:
		return UnitYear
	case levelMonth:
		return UnitMonth
	case levelDay:
		return UnitDay
	case levelHour:
		return UnitHour
	case levelMinute:
		return UnitMinute
	case levelSecond:
		return UnitSecond
	default:
		return UnitMillisecond
	}
}

// addMonths moves t by whole months. If the day does not exist in the
// resulting month the last day of that month is used.
func addMonths(t time.Time, months int64) time.Time {
	year, month, day := t.Date()
	total := int64(year)*12 + int64(month-1) + months
	newYear, newMonth := int(total/12), time.Month(total%12+1)
	if total < 0 && total%12 != 0 {
		newYear, newMonth = int(total/12)-1, time.Month(total%12+13)
	}
	day = min(day, daysIn(newYear, newMonth))
	hour, min, sec := t.Clock()
	return time.Date(newYear, newMonth, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// Add returns d shifted by a calendar quantity; negate subtracts.
func (d Date) Add(q Quantity, negate bool) (Date, error) {
	t, err := shiftTime(d.Value, q, negate, datePrecisionLevel(d.Precision))
	if err != nil {
		return Date{}, err
	}
	return buildDateFromTime(t, d.Precision), nil
}

func (dt DateTime) Add(q Quantity, negate bool) (DateTime, error) {
	t, err := shiftTime(dt.Value, q, negate, dateTimePrecisionLevel(dt.Precision))
	if err != nil {
		return DateTime{}, err
	}
	result := buildDateTimeFromTime(t, dt.Precision)
	result.HasTimeZone = dt.HasTimeZone
	return result, nil
}

// Add shifts a time of day, wrapping around midnight.
func (t Time) Add(q Quantity, negate bool) (Time, error) {
	unit := normalizeTimeUnit(q.Unit)
	if level, ok := timeUnitLevel(unit); !ok || level < levelHour {
		return Time{}, newError(TypeError, "invalid time unit for Time: %s", q.Unit)
	}
	shifted, err := shiftTime(t.Value, q, negate, timePrecisionLevel(t.Precision))
	if err != nil {
		return Time{}, err
	}
	hour, min, sec := shifted.Clock()
	return buildTimeFromTime(time.Date(0, time.January, 1, hour, min, sec, shifted.Nanosecond(), time.UTC), t.Precision), nil
}

func buildDateFromTime(t time.Time, precision DatePrecision) Date {
	year, month, day := t.Date()
	switch precision {
	case DatePrecisionYear:
		month = time.January
		day = 1
	case DatePrecisionMonth:
		day = 1
	}
	return Date{
		Value:     time.Date(year, month, day, 0, 0, 0, 0, t.Location()),
		Precision: precision,
	}
}

func buildDateTimeFromTime(t time.Time, precision DateTimePrecision) DateTime {
	loc := t.Location()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	nsec := t.Nanosecond()
	switch precision {
	case DateTimePrecisionYear:
		month = time.January
		day = 1
		hour, min, sec, nsec = 0, 0, 0, 0
	case DateTimePrecisionMonth:
		day = 1
		hour, min, sec, nsec = 0, 0, 0, 0
	case DateTimePrecisionDay:
		hour, min, sec, nsec = 0, 0, 0, 0
	case DateTimePrecisionHour:
		min, sec, nsec = 0, 0, 0
	case DateTimePrecisionMinute:
		sec, nsec = 0, 0
	case DateTimePrecisionSecond:
		nsec = 0
	case DateTimePrecisionMillisecond:
		nsec = alignToMillisecond(nsec)
	}
	return DateTime{
		Value:     time.Date(year, month, day, hour, min, sec, nsec, loc),
		Precision: precision,
	}
}

func buildTimeFromTime(t time.Time, precision TimePrecision) Time {
	hour, min, sec := t.Clock()
	nsec := t.Nanosecond()
	switch precision {
	case TimePrecisionHour:
		min, sec, nsec = 0, 0, 0
	case TimePrecisionMinute:
		sec, nsec = 0, 0
	case TimePrecisionSecond:
		nsec = 0
	default:
		nsec = alignToMillisecond(nsec)
	}
	return Time{
		Value:     time.Date(0, time.January, 1, hour, min, sec, nsec, time.UTC),
		Precision: precision,
	}
}

func alignToMillisecond(nsec int) int {
	return nsec / int(time.Millisecond) * int(time.Millisecond)
}

// Precision digits as used by precision(), lowBoundary() and
// highBoundary().

func (d Date) PrecisionDigits() int {
	switch d.Precision {
	case DatePrecisionYear:
		return 4
	case DatePrecisionMonth:
		return 6
	default:
		return 8
	}
}

func (dt DateTime) PrecisionDigits() int {
	switch dt.Precision {
	case DateTimePrecisionYear:
		return 4
	case DateTimePrecisionMonth:
		return 6
	case DateTimePrecisionDay:
		return 8
	case DateTimePrecisionHour:
		return 10
	case DateTimePrecisionMinute:
		return 12
	case DateTimePrecisionSecond:
		return 14
	default:
		return 17
	}
}

func (t Time) PrecisionDigits() int {
	switch t.Precision {
	case TimePrecisionHour:
		return 2
	case TimePrecisionMinute:
		return 4
	case TimePrecisionSecond:
		return 6
	default:
		return 9
	}
}

func datePrecisionFromDigits(d int) (DatePrecision, bool) {
	switch d {
	case 4:
		return DatePrecisionYear, true
	case 6:
		return DatePrecisionMonth, true
	case 8:
		return DatePrecisionFull, true
	}
	return "", false
}

func dateTimePrecisionFromDigits(d int) (DateTimePrecision, bool) {
	switch d {
	case 4:
		return DateTimePrecisionYear, true
	case 6:
		return DateTimePrecisionMonth, true
	case 8:
		return DateTimePrecisionDay, true
	case 10:
		return DateTimePrecisionHour, true
	case 12:
		return DateTimePrecisionMinute, true
	case 14:
		return DateTimePrecisionSecond, true
	case 17:
		return DateTimePrecisionMillisecond, true
	}
	return "", false
}

func timePrecisionFromDigits(d int) (TimePrecision, bool) {
	switch d {
	case 2:
		return TimePrecisionHour, true
	case 4:
		return TimePrecisionMinute, true
	case 6:
		return TimePrecisionSecond, true
	case 9:
		return TimePrecisionMillisecond, true
	}
	return "", false
}

// rangeEndpoints returns the first and last instant covered by a value of
// the given level.
func rangeEndpoints(t time.Time, level int) (time.Time, time.Time) {
	loc := t.Location()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	switch level {
	case levelYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			time.Date(year, time.December, 31, 23, 59, 59, maxMillisecondNanoseconds, loc)
	case levelMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc),
			time.Date(year, month, daysIn(year, month), 23, 59, 59, maxMillisecondNanoseconds, loc)
	case levelDay:
		return time.Date(year, month, day, 0, 0, 0, 0, loc),
			time.Date(year, month, day, 23, 59, 59, maxMillisecondNanoseconds, loc)
	case levelHour:
		return time.Date(year, month, day, hour, 0, 0, 0, loc),
			time.Date(year, month, day, hour, 59, 59, maxMillisecondNanoseconds, loc)
	case levelMinute:
		return time.Date(year, month, day, hour, min, 0, 0, loc),
			time.Date(year, month, day, hour, min, 59, maxMillisecondNanoseconds, loc)
	case levelSecond:
		return time.Date(year, month, day, hour, min, sec, 0, loc),
			time.Date(year, month, day, hour, min, sec, maxMillisecondNanoseconds, loc)
	default:
		moment := time.Date(year, month, day, hour, min, sec, alignToMillisecond(t.Nanosecond()), loc)
		return moment, moment
	}
}

// Boundary returns the lowest (upper false) or highest possible value of d
// at the given precision digits.
func (d Date) Boundary(digits int, upper bool) (Date, bool) {
	precision, ok := datePrecisionFromDigits(digits)
	if !ok {
		return Date{}, false
	}
	start, end := rangeEndpoints(d.Value, datePrecisionLevel(d.Precision))
	anchor := start
	if upper {
		anchor = end
	}
	return buildDateFromTime(anchor, precision), true
}

// Boundary for a DateTime without timezone spans the possible offsets
// from +14:00 (low) to -12:00 (high).
func (dt DateTime) Boundary(digits int, upper bool) (DateTime, bool) {
	precision, ok := dateTimePrecisionFromDigits(digits)
	if !ok {
		return DateTime{}, false
	}
	start, end := rangeEndpoints(dt.Value, dateTimePrecisionLevel(dt.Precision))
	anchor := start
	if upper {
		anchor = end
	}
	hasTime := dateTimePrecisionLevel(precision) >= levelHour
	if !dt.HasTimeZone && hasTime {
		offset := maxTimeZoneOffsetHours
		if upper {
			offset = minTimeZoneOffsetHours
		}
		anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), anchor.Hour(), anchor.Minute(),
			anchor.Second(), anchor.Nanosecond(), time.FixedZone("", offset*3600))
	}
	result := buildDateTimeFromTime(anchor, precision)
	result.HasTimeZone = dt.HasTimeZone || hasTime
	return result, true
}

func (t Time) Boundary(digits int, upper bool) (Time, bool) {
	precision, ok := timePrecisionFromDigits(digits)
	if !ok {
		return Time{}, false
	}
	start, end := rangeEndpoints(t.Value, timePrecisionLevel(t.Precision))
	anchor := start
	if upper {
		anchor = end
	}
	return buildTimeFromTime(anchor, precision), true
}
