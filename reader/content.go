package reader

import "unicode/utf8"

// isTextContent reports whether data decodes as UTF-8 text. A null byte in
// the first 512 bytes marks the file as binary before the full validity
// check runs.
func isTextContent(data []byte) bool {
	checkSize := 512
	if len(data) < checkSize {
		checkSize = len(data)
	}
	for i := 0; i < checkSize; i++ {
		if data[i] == 0 {
			return false
		}
	}

	return utf8.Valid(data)
}
