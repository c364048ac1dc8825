package goteleinfo

// Describe flattens a decoded message into a map suitable for JSON output or
// an MQTT payload. A nil message describes as {"kind": "ignored"}.
func Describe(m Message) map[string]any {
	if m == nil {
		return map[string]any{"kind": "ignored"}
	}
	fields := map[string]any{"kind": m.Kind()}
	switch msg := m.(type) {
	case ADCO:
	case TariffOption:
		fields["option"] = msg.Value.String()
	case Tomorrow:
		if msg.Known {
			fields["color"] = msg.Color.String()
		} else {
			fields["color"] = "undefined"
		}
	case InstantaneousPower:
		fields["phase"] = msg.Phase
		fields["amperes"] = msg.Value
	case ApparentPower:
		fields["volt_amperes"] = msg.Value
	case Index:
		fields["hour"] = msg.Period.Hour.String()
		fields["color"] = msg.Period.Color.String()
		fields["watt_hours"] = msg.Value
	case HHPHC:
		fields["group"] = string(msg.Group)
	case CurrentTariffPeriod:
		fields["hour"] = msg.Period.Hour.String()
		fields["color"] = msg.Period.Color.String()
	}
	return fields
}
