package goteleinfo

import "fmt"

// DayColor is the Tempo day tier.
type DayColor uint8

const (
	Blue DayColor = iota
	White
	Red
)

func (c DayColor) String() string {
	switch c {
	case Blue:
		return "blue"
	case White:
		return "white"
	case Red:
		return "red"
	}
	return fmt.Sprintf("DayColor(%d)", uint8(c))
}

// HourlyPeriod says whether the off-peak or peak rate applies.
type HourlyPeriod uint8

const (
	OffPeakHours HourlyPeriod = iota
	PeakHours
)

func (h HourlyPeriod) String() string {
	switch h {
	case OffPeakHours:
		return "off-peak hours"
	case PeakHours:
		return "peak hours"
	}
	return fmt.Sprintf("HourlyPeriod(%d)", uint8(h))
}

// TariffOptionValue is the subscribed tariff option (OPTARIF).
type TariffOptionValue uint8

const (
	TariffBase TariffOptionValue = iota
	TariffOffPeakHours
	TariffEJP
	TariffTempo
)

func (o TariffOptionValue) String() string {
	switch o {
	case TariffBase:
		return "base"
	case TariffOffPeakHours:
		return "off-peak hours"
	case TariffEJP:
		return "ejp"
	case TariffTempo:
		return "tempo"
	}
	return fmt.Sprintf("TariffOptionValue(%d)", uint8(o))
}

// ScheduleGroup is the HHPHC schedule-group code published by the meter.
type ScheduleGroup byte

const (
	ScheduleGroupA ScheduleGroup = 'A'
	ScheduleGroupC ScheduleGroup = 'C'
	ScheduleGroupD ScheduleGroup = 'D'
	ScheduleGroupE ScheduleGroup = 'E'
	ScheduleGroupY ScheduleGroup = 'Y'
)

// TariffPeriod identifies one metering period. The day color is always
// present here; only the Tomorrow forecast can lack one.
type TariffPeriod struct {
	Hour  HourlyPeriod
	Color DayColor
}

// Message is one decoded Teleinfo group. The set of implementations is
// closed. A nil Message together with a nil error means the group was
// recognized but carries nothing the library reports.
type Message interface {
	// Kind returns a stable lowercase identifier for the variant.
	Kind() string
	message()
}

// ADCO acknowledges the meter serial number group.
type ADCO struct{}

// TariffOption reports the subscribed tariff option (OPTARIF).
type TariffOption struct {
	Value TariffOptionValue
}

// Tomorrow is the next-day color forecast (DEMAIN). Color is meaningful only
// when Known is true; the meter publishes "----" until the forecast exists.
type Tomorrow struct {
	Color DayColor
	Known bool
}

// InstantaneousPower is the per-phase instantaneous current (IINST1..3).
type InstantaneousPower struct {
	Phase uint8
	Value uint8
}

// ApparentPower is the apparent power in volt-amperes (PAPP).
type ApparentPower struct {
	Value uint16
}

// Index is the cumulative energy counter for one tariff period (BBRH*).
type Index struct {
	Period TariffPeriod
	Value  uint32
}

// HHPHC is the schedule-group code.
type HHPHC struct {
	Group ScheduleGroup
}

// CurrentTariffPeriod reports which tariff period is active (PTEC).
type CurrentTariffPeriod struct {
	Period TariffPeriod
}

func (ADCO) Kind() string                { return "adco" }
func (TariffOption) Kind() string        { return "tariff_option" }
func (Tomorrow) Kind() string            { return "tomorrow" }
func (InstantaneousPower) Kind() string  { return "instantaneous_power" }
func (ApparentPower) Kind() string       { return "apparent_power" }
func (Index) Kind() string               { return "index" }
func (HHPHC) Kind() string               { return "hhphc" }
func (CurrentTariffPeriod) Kind() string { return "current_tariff_period" }

func (ADCO) message()                {}
func (TariffOption) message()        {}
func (Tomorrow) message()            {}
func (InstantaneousPower) message()  {}
func (ApparentPower) message()       {}
func (Index) message()               {}
func (HHPHC) message()               {}
func (CurrentTariffPeriod) message() {}
