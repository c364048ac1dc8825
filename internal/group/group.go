// Package group handles the wire grammar of a single Teleinfo group:
// <CODE><SEP><DATA><SEP><CTRL>, where SEP is a space or horizontal tab and
// CTRL is the trailing control character.
package group

import (
	"regexp"
	"strings"
)

// codes is the closed set of groups the meter link publishes. Anything else
// fails the record match.
var codes = []string{
	"ADCO", "OPTARIF", "ISOUSC",
	"BBRHCJB", "BBRHCJW", "BBRHCJR",
	"BBRHPJB", "BBRHPJW", "BBRHPJR",
	"IMAX1", "IMAX2", "IMAX3",
	"PTEC", "DEMAIN",
	"IINST1", "IINST2", "IINST3",
	"PMAX", "PAPP", "HHPHC",
	"MOTDETAT", "PPOT",
}

var recordRE = regexp.MustCompile(`^(` + strings.Join(codes, "|") + `)([ \t])([^ \t]+)[ \t](.)$`)

// Group is one record split into its fields. Sep keeps the separator byte
// that followed the code because the control character is computed over it.
type Group struct {
	Code    string
	Sep     byte
	Data    string
	Control byte
}

// Split matches a trimmed record against the group grammar. ok is false when
// the record is garbled, truncated, or carries an unknown code.
func Split(record string) (Group, bool) {
	m := recordRE.FindStringSubmatch(record)
	if m == nil {
		return Group{}, false
	}
	return Group{
		Code:    m[1],
		Sep:     m[2][0],
		Data:    m[3],
		Control: m[4][0],
	}, true
}

// Checksum computes the expected control character: the sum of the bytes of
// the code, the separator and the data, truncated to six bits and offset
// into the printable range.
func (g Group) Checksum() byte {
	sum := uint32(g.Sep)
	for i := 0; i < len(g.Code); i++ {
		sum += uint32(g.Code[i])
	}
	for i := 0; i < len(g.Data); i++ {
		sum += uint32(g.Data[i])
	}
	return byte(sum&0x3F) + 0x20
}
