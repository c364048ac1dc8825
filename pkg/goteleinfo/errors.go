package goteleinfo

import "fmt"

// GroupError reports a record that does not match the group grammar or whose
// code is outside the recognized set. Record carries the input verbatim.
type GroupError struct {
	Record string
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("unrecognized group: %q", e.Record)
}

// FieldError reports data that failed the field-specific grammar of a
// recognized code.
type FieldError struct {
	Code string
	Data string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unable to parse %s data: %q", e.Code, e.Data)
}

// HourlyPeriodError reports a period fragment whose hour indicator is
// neither 'C' nor 'P'.
type HourlyPeriodError struct {
	Fragment string
}

func (e *HourlyPeriodError) Error() string {
	return fmt.Sprintf("unable to parse hourly period from %q", e.Fragment)
}

// DayColorError reports a period fragment whose day color is not one of
// 'B', 'W' or 'R'.
type DayColorError struct {
	Fragment string
}

func (e *DayColorError) Error() string {
	return fmt.Sprintf("unable to parse day color from %q", e.Fragment)
}

// ControlCharacterError reports a mismatch between the trailing control
// character and the checksum of the group's bytes. It is returned only when
// DecodeOptions.VerifyChecksum is set.
type ControlCharacterError struct {
	Record string
	Want   byte
	Got    byte
}

func (e *ControlCharacterError) Error() string {
	return fmt.Sprintf("control character mismatch in %q: computed %q, got %q", e.Record, e.Want, e.Got)
}
