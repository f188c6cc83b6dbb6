package endpoint

import "strconv"

const (
	identifierPrefix = "ros2_"

	// maxIdentifierLength bounds the full identifier, prefix and
	// checksum included.
	maxIdentifierLength = 256

	checksumModulus = 1000000007
)

// Transform derives a connection identifier from a raw endpoint key:
// a fixed prefix, the sanitized key, and a rolling checksum of the raw
// bytes. The result never exceeds maxIdentifierLength characters.
func Transform(raw string) string {
	checksum := strconv.FormatUint(checksumOf(raw), 10)
	return buildIdentifier(identifierPrefix, sanitize(raw), checksum)
}

// sanitize replaces every byte outside [A-Za-z0-9_] with '_'. Output
// length equals input length; multi-byte runes degrade byte-for-byte,
// matching a plain char scan.
func sanitize(raw string) string {
	sanitized := make([]byte, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') ||
			c == '_' {
			sanitized[i] = c
		} else {
			sanitized[i] = '_'
		}
	}
	return string(sanitized)
}

// checksumOf computes the base-31 polynomial hash of the raw bytes,
// modulo checksumModulus. The checksum covers the original input, not
// the sanitized form.
func checksumOf(raw string) uint64 {
	var sum uint64
	for i := 0; i < len(raw); i++ {
		sum = (sum*31 + uint64(raw[i])) % checksumModulus
	}
	return sum
}

// buildIdentifier assembles prefix + body + checksum, truncating the
// body so the total stays within maxIdentifierLength. The body budget
// is clamped at zero so an oversized prefix+checksum pair yields just
// those two parts instead of underflowing.
func buildIdentifier(prefix, body, checksum string) string {
	maxBody := maxIdentifierLength - len(prefix) - len(checksum)
	if maxBody < 0 {
		maxBody = 0
	}
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return prefix + body + checksum
}
