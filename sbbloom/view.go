package sbbloom

// StringBytes is a ViewBytes function for strings,
// returning the string's UTF-8 bytes.
func StringBytes(s string) []byte {
	return []byte(s)
}

// Bytes is a ViewBytes function for byte slices.
// The slice is used as-is.
func Bytes(b []byte) []byte {
	return b
}
