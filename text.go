package tokcount

import "strings"

// DecodeText converts raw file bytes to text. Invalid UTF-8 byte sequences
// are dropped and "\r\n" and lone "\r" line endings become "\n".
func DecodeText(data []byte) string {
	s := strings.ToValidUTF8(string(data), "")
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// IsBinary reports whether data looks like a binary file: it contains a
// control byte other than newline, carriage return or tab.
func IsBinary(data []byte) bool {
	for _, c := range data {
		if c < 0x20 && c != '\n' && c != '\r' && c != '\t' {
			return true
		}
	}
	return false
}
