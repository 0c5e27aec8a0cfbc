package errors

// Error codes for the thumbc compiler.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Parser errors
// E0800-E0899: Warning codes
const (
	// E0001: Character outside the recognized set
	ErrorUnexpectedCharacter = "E0001"

	// E0100: A specific token was expected but another one was found
	ErrorUnexpectedToken = "E0100"

	// E0101: An expression was expected
	ErrorMissingExpression = "E0101"

	// E0102: Input continues after the single supported function
	ErrorTrailingTokens = "E0102"

	// E0103: Integer literal does not fit in 32 bits
	ErrorIntegerOutOfRange = "E0103"

	// W0800: Return value does not fit the 8-bit immediate and is truncated
	WarningImmediateTruncated = "W0800"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Character is not part of the language"
	case ErrorUnexpectedToken:
		return "Token does not match the grammar at this point"
	case ErrorMissingExpression:
		return "An expression is required here"
	case ErrorTrailingTokens:
		return "Only one function per program is supported"
	case ErrorIntegerOutOfRange:
		return "Integer literal does not fit in a signed 32-bit integer"
	case WarningImmediateTruncated:
		return "Return value is truncated to its low 8 bits"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && (code[0] == 'W' || code >= "E0800" && code < "E0900")
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case IsWarning(code):
		return "Warning"
	case code >= "E0001" && code < "E0100":
		return "Lexer"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	default:
		return "Unknown"
	}
}
