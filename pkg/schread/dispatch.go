package schread

import "strings"

// Dispatch picks a Reader for path by its extension, matching spec.md
// §6.1: legacy text (".sch", ".sym") and XML (".sch.xml", ".sym.xml");
// anything else is a structured UnsupportedFormatError.
func Dispatch(path string) (Reader, error) {
	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".sch.xml"), strings.HasSuffix(lower, ".sym.xml"):
		return XMLReader{}, nil
	case strings.HasSuffix(lower, ".sch"), strings.HasSuffix(lower, ".sym"):
		return LegacyReader{}, nil
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}
