// Package goteleinfo decodes the ASCII telemetry groups emitted by the
// Teleinfo serial link of French residential electricity meters.
//
// The caller hands Decode one record at a time, already stripped of the
// frame-control bytes (start of frame, end of frame, carriage return).
// Decoding is pure: no state is kept between calls, and the precompiled
// record grammar is read-only, so Decode is safe for concurrent use.
package goteleinfo

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/d21d3q/goteleinfo/internal/group"
)

// Decode parses a single trimmed record. It returns the typed message, or
// (nil, nil) for groups that are recognized but intentionally ignored, or an
// error describing exactly what failed.
func Decode(record string) (Message, error) {
	return DecodeWithOptions(record, DecodeOptions{})
}

// DecodeWithOptions parses a single trimmed record with custom options.
func DecodeWithOptions(record string, opts DecodeOptions) (Message, error) {
	g, ok := group.Split(record)
	if !ok {
		return nil, &GroupError{Record: record}
	}
	if opts.VerifyChecksum {
		if want := g.Checksum(); want != g.Control {
			return nil, &ControlCharacterError{Record: record, Want: want, Got: g.Control}
		}
	}

	switch g.Code {
	case "ADCO":
		return ADCO{}, nil
	case "OPTARIF":
		return decodeTariffOption(g)
	case "DEMAIN":
		return decodeTomorrow(g)
	case "IINST1", "IINST2", "IINST3":
		return decodeInstantaneousPower(g)
	case "PAPP":
		return decodeApparentPower(g)
	case "HHPHC":
		return decodeScheduleGroup(g)
	case "PTEC":
		return decodeCurrentPeriod(g)
	case "BBRHCJB", "BBRHCJW", "BBRHCJR", "BBRHPJB", "BBRHPJW", "BBRHPJR":
		return decodeIndex(g)
	case "MOTDETAT", "IMAX1", "IMAX2", "IMAX3", "PPOT", "PMAX", "ISOUSC":
		// Recognized groups that carry nothing the library reports.
		return nil, nil
	}
	// The record grammar only admits the codes above. Reaching this point is
	// a defect in the decoder, not bad input.
	panic(fmt.Sprintf("goteleinfo: code %q accepted but not handled", g.Code))
}

func decodeTariffOption(g group.Group) (Message, error) {
	switch {
	case g.Data == "BASE":
		return TariffOption{Value: TariffBase}, nil
	case g.Data == "HC..":
		return TariffOption{Value: TariffOffPeakHours}, nil
	case g.Data == "EJP.":
		return TariffOption{Value: TariffEJP}, nil
	case strings.HasPrefix(g.Data, "BBR"):
		return TariffOption{Value: TariffTempo}, nil
	}
	return nil, &FieldError{Code: g.Code, Data: g.Data}
}

func decodeTomorrow(g group.Group) (Message, error) {
	switch g.Data {
	case "----":
		return Tomorrow{}, nil
	case "BLEU":
		return Tomorrow{Color: Blue, Known: true}, nil
	case "BLAN":
		return Tomorrow{Color: White, Known: true}, nil
	case "ROUG":
		return Tomorrow{Color: Red, Known: true}, nil
	}
	return nil, &FieldError{Code: g.Code, Data: g.Data}
}

func decodeInstantaneousPower(g group.Group) (Message, error) {
	value, err := strconv.ParseUint(g.Data, 10, 8)
	if err != nil {
		return nil, &FieldError{Code: g.Code, Data: g.Data}
	}
	return InstantaneousPower{Phase: g.Code[5] - '0', Value: uint8(value)}, nil
}

func decodeApparentPower(g group.Group) (Message, error) {
	value, err := strconv.ParseUint(g.Data, 10, 16)
	if err != nil {
		return nil, &FieldError{Code: g.Code, Data: g.Data}
	}
	return ApparentPower{Value: uint16(value)}, nil
}

func decodeScheduleGroup(g group.Group) (Message, error) {
	switch g.Data {
	case "A", "C", "D", "E", "Y":
		return HHPHC{Group: ScheduleGroup(g.Data[0])}, nil
	}
	return nil, &FieldError{Code: g.Code, Data: g.Data}
}

func decodeCurrentPeriod(g group.Group) (Message, error) {
	period, err := parsePeriod(g.Data)
	if err != nil {
		// PTEC reports any malformed period as a field error; the period
		// errors belong to the fragment parser's own contract.
		return nil, &FieldError{Code: g.Code, Data: g.Data}
	}
	return CurrentTariffPeriod{Period: period}, nil
}

func decodeIndex(g group.Group) (Message, error) {
	period, err := parsePeriod(g.Code[3:])
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseUint(g.Data, 10, 32)
	if err != nil {
		return nil, &FieldError{Code: g.Code, Data: g.Data}
	}
	return Index{Period: period, Value: uint32(value)}, nil
}

// parsePeriod decodes a four-character period fragment such as "HCJB": the
// hour indicator sits at offset 1, the day color at offset 3.
func parsePeriod(fragment string) (TariffPeriod, error) {
	if len(fragment) != 4 {
		return TariffPeriod{}, &HourlyPeriodError{Fragment: fragment}
	}
	var period TariffPeriod
	switch fragment[1] {
	case 'C':
		period.Hour = OffPeakHours
	case 'P':
		period.Hour = PeakHours
	default:
		return TariffPeriod{}, &HourlyPeriodError{Fragment: fragment}
	}
	switch fragment[3] {
	case 'B':
		period.Color = Blue
	case 'W':
		period.Color = White
	case 'R':
		period.Color = Red
	default:
		return TariffPeriod{}, &DayColorError{Fragment: fragment}
	}
	return period, nil
}
