package normalisers

import (
	"errors"

	"github.com/alecthomas/participle/v2"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// RuleFunc names the grammar rule that failed given the unparsed input.
type RuleFunc func(remaining string) string

// ParseError converts a participle or lexer error into a *domain.ParseError
// pointing at the first unparsed byte of input.
func ParseError(dialect domain.Dialect, input string, err error, rule RuleFunc) error {
	if err == nil {
		return nil
	}

	perr := &domain.ParseError{
		Dialect: dialect,
		Message: err.Error(),
	}

	var pe participle.Error
	if errors.As(err, &pe) {
		perr.Message = pe.Message()
		perr.Offset = pe.Position().Offset
	}
	if perr.Offset < 0 || perr.Offset > len(input) {
		perr.Offset = len(input)
	}
	perr.Remaining = input[perr.Offset:]

	perr.Rule = "sheet"
	if rule != nil {
		perr.Rule = rule(perr.Remaining)
	}
	return perr
}
