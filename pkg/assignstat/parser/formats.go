package parser

import "strings"

// builtinDateFormats are the built-in number format IDs that render a
// calendar date. Pure time formats (18-21, 45-47) are left out.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	55: true, 56: true, 57: true, 58: true,
}

// isDateFormat reports whether a number format renders a calendar date.
func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil {
		return isDateFormatCode(*custom)
	}
	return builtinDateFormats[numFmt]
}

// isDateFormatCode reports whether a custom format code contains a day or
// year token outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	// Only the first (positive) section decides
	if idx := strings.Index(code, ";"); idx >= 0 {
		code = code[:idx]
	}

	inQuote, inBracket, escaped := false, false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case r == 'd' || r == 'y':
			return true
		}
	}
	return false
}
