package types

import "bytes"

// SplitLines splits content on '\n'. Terminators are dropped; a trailing
// newline does not start an extra empty line, and '\r' is kept as content.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := make([]string, 0, bytes.Count(content, []byte{'\n'})+1)
	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, string(content))
			break
		}
		lines = append(lines, string(content[:i]))
		content = content[i+1:]
	}
	return lines
}

// IsBinary reports whether content looks binary: a NUL byte in the first 8KB.
func IsBinary(content []byte) bool {
	checkSize := len(content)
	if checkSize > 8192 {
		checkSize = 8192
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}
