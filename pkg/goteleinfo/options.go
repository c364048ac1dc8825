package goteleinfo

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// VerifyChecksum checks the trailing control character against the
	// checksum of the code, separator and data bytes. Off by default:
	// captured records often carry placeholder control characters.
	VerifyChecksum bool
}
