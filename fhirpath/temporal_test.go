package fhirpath_test

import (
	"testing"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/google/go-cmp/cmp"
)

func TestParseTemporal(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (fhirpath.Value, error)
		input   string
		want    string
		wantErr bool
	}{
		{name: "date year", parse: parseDate, input: "@2014", want: "2014"},
		{name: "date month", parse: parseDate, input: "2014-03", want: "2014-03"},
		{name: "date full", parse: parseDate, input: "@2014-03-25", want: "2014-03-25"},
		{name: "date leap day", parse: parseDate, input: "2024-02-29", want: "2024-02-29"},
		{name: "date no leap day", parse: parseDate, input: "2023-02-29", wantErr: true},
		{name: "date bad month", parse: parseDate, input: "2014-13", wantErr: true},
		{name: "date garbage", parse: parseDate, input: "14-03-25", wantErr: true},
		{name: "datetime date only", parse: parseDateTime, input: "@2014-03T", want: "2014-03T"},
		{name: "datetime hour", parse: parseDateTime, input: "@2014-03-25T14", want: "2014-03-25T14"},
		{name: "datetime utc", parse: parseDateTime, input: "2014-03-25T14:30:15Z", want: "2014-03-25T14:30:15Z"},
		{name: "datetime offset", parse: parseDateTime, input: "2014-03-25T14:30:15.5+02:00", want: "2014-03-25T14:30:15.500+02:00"},
		{name: "datetime time without day", parse: parseDateTime, input: "2014-03T14:30", wantErr: true},
		{name: "datetime bad hour", parse: parseDateTime, input: "2014-03-25T25:00", wantErr: true},
		{name: "time hour", parse: parseTime, input: "@T14", want: "14"},
		{name: "time millis", parse: parseTime, input: "T14:30:15.123", want: "14:30:15.123"},
		{name: "time bad minute", parse: parseTime, input: "T14:60", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemporalCmp(t *testing.T) {
	tests := []struct {
		name   string
		a, b   fhirpath.Value
		want   int
		wantOk bool
	}{
		{name: "dates equal", a: mustDate(t, "2014-03-25"), b: mustDate(t, "2014-03-25"), want: 0, wantOk: true},
		{name: "dates less", a: mustDate(t, "2014-03-25"), b: mustDate(t, "2014-04-01"), want: -1, wantOk: true},
		{name: "differing precision decided", a: mustDate(t, "2014"), b: mustDate(t, "2015-01"), want: -1, wantOk: true},
		{name: "differing precision undecided", a: mustDate(t, "2014"), b: mustDate(t, "2014-01"), wantOk: false},
		{name: "offsets normalized", a: mustDateTime(t, "2014-03-25T14:00:00+02:00"), b: mustDateTime(t, "2014-03-25T12:00:00Z"), want: 0, wantOk: true},
		{name: "timezone on one side", a: mustDateTime(t, "2014-03-25T14:00:00"), b: mustDateTime(t, "2014-03-25T14:00:00Z"), wantOk: false},
		{name: "seconds and milliseconds share a level", a: mustDateTime(t, "2014-03-25T14:00:00Z"), b: mustDateTime(t, "2014-03-25T14:00:00.000Z"), want: 0, wantOk: true},
		{name: "date against datetime", a: mustDate(t, "2014-03-25"), b: mustDateTime(t, "2014-03-26T10:00:00Z"), want: -1, wantOk: true},
		{name: "times", a: mustTime(t, "10:30"), b: mustTime(t, "10:29:59"), want: 1, wantOk: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got int
				ok  bool
			)
			switch a := tt.a.(type) {
			case fhirpath.Date:
				switch b := tt.b.(type) {
				case fhirpath.Date:
					got, ok = a.Cmp(b)
				case fhirpath.DateTime:
					got, ok = a.ToDateTime().Cmp(b)
				}
			case fhirpath.DateTime:
				got, ok = a.Cmp(tt.b.(fhirpath.DateTime))
			case fhirpath.Time:
				got, ok = a.Cmp(tt.b.(fhirpath.Time))
			}
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("cmp = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTemporalAdd(t *testing.T) {
	tests := []struct {
		name     string
		value    fhirpath.Value
		quantity fhirpath.Quantity
		negate   bool
		want     string
		wantErr  bool
	}{
		{name: "date plus year", value: mustDate(t, "2020-01-01"), quantity: quantity(t, "1", "year"), want: "2021-01-01"},
		{name: "month end clamped", value: mustDate(t, "2020-01-31"), quantity: quantity(t, "1", "month"), want: "2020-02-29"},
		{name: "date minus month", value: mustDate(t, "2020-01-31"), quantity: quantity(t, "1", "months"), negate: true, want: "2019-12-31"},
		{name: "ucum days", value: mustDate(t, "2020-02-28"), quantity: quantity(t, "2", "d"), want: "2020-03-01"},
		{name: "year precision ignores months", value: mustDate(t, "2020"), quantity: quantity(t, "13", "months"), want: "2021"},
		{name: "day precision drops hours", value: mustDate(t, "2020-01-01"), quantity: quantity(t, "25", "hours"), want: "2020-01-02"},
		{name: "datetime keeps zone", value: mustDateTime(t, "2020-01-01T23:30:00+01:00"), quantity: quantity(t, "45", "minutes"), want: "2020-01-02T00:15:00+01:00"},
		{name: "time wraps", value: mustTime(t, "23:30"), quantity: quantity(t, "1", "hour"), want: "00:30"},
		{name: "time rejects days", value: mustTime(t, "23:30"), quantity: quantity(t, "1", "day"), wantErr: true},
		{name: "not a time unit", value: mustDate(t, "2020-01-01"), quantity: quantity(t, "1", "mg"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got fhirpath.Value
				err error
			)
			switch v := tt.value.(type) {
			case fhirpath.Date:
				got, err = v.Add(tt.quantity, tt.negate)
			case fhirpath.DateTime:
				got, err = v.Add(tt.quantity, tt.negate)
			case fhirpath.Time:
				got, err = v.Add(tt.quantity, tt.negate)
			}
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemporalBoundary(t *testing.T) {
	tests := []struct {
		name   string
		value  fhirpath.Value
		digits int
		upper  bool
		want   string
		wantOk bool
	}{
		{name: "date low", value: mustDate(t, "2014"), digits: 8, want: "2014-01-01", wantOk: true},
		{name: "date high", value: mustDate(t, "2014-02"), digits: 8, upper: true, want: "2014-02-28", wantOk: true},
		{name: "date invalid digits", value: mustDate(t, "2014"), digits: 5},
		{name: "datetime low without zone", value: mustDateTime(t, "2014-01-01T08"), digits: 17, want: "2014-01-01T08:00:00.000+14:00", wantOk: true},
		{name: "datetime high without zone", value: mustDateTime(t, "2014-01-01T08"), digits: 17, upper: true, want: "2014-01-01T08:59:59.999-12:00", wantOk: true},
		{name: "datetime high with zone", value: mustDateTime(t, "2014-01-01T08:05Z"), digits: 14, upper: true, want: "2014-01-01T08:05:59Z", wantOk: true},
		{name: "time high", value: mustTime(t, "10:30"), digits: 9, upper: true, want: "10:30:59.999", wantOk: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got fhirpath.Value
				ok  bool
			)
			switch v := tt.value.(type) {
			case fhirpath.Date:
				got, ok = v.Boundary(tt.digits, tt.upper)
			case fhirpath.DateTime:
				got, ok = v.Boundary(tt.digits, tt.upper)
			case fhirpath.Time:
				got, ok = v.Boundary(tt.digits, tt.upper)
			}
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrecisionDigits(t *testing.T) {
	got := []int{
		mustDate(t, "2014").PrecisionDigits(),
		mustDateTime(t, "2014-01-01T10:00").PrecisionDigits(),
		mustDateTime(t, "2014-01-01T10:00:00.000").PrecisionDigits(),
		mustTime(t, "10:00:00").PrecisionDigits(),
	}
	if diff := cmp.Diff([]int{4, 12, 17, 6}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func parseDate(s string) (fhirpath.Value, error) { return fhirpath.ParseDate(s) }

func parseDateTime(s string) (fhirpath.Value, error) { return fhirpath.ParseDateTime(s) }

func parseTime(s string) (fhirpath.Value, error) { return fhirpath.ParseTime(s) }

func mustDate(t *testing.T, s string) fhirpath.Date {
	t.Helper()
	d, err := fhirpath.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustDateTime(t *testing.T, s string) fhirpath.DateTime {
	t.Helper()
	dt, err := fhirpath.ParseDateTime(s)
	if err != nil {
		t.Fatal(err)
	}
	return dt
}

func mustTime(t *testing.T, s string) fhirpath.Time {
	t.Helper()
	tm, err := fhirpath.ParseTime(s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func quantity(t *testing.T, value, unit string) fhirpath.Quantity {
	t.Helper()
	q, err := fhirpath.NewQuantity(value, unit)
	if err != nil {
		t.Fatal(err)
	}
	return q
}
