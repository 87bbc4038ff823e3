package customer

import (
	"fmt"
	"regexp"

	"kino/services"
)

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	numberRe = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[\W_]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	switch {
	case len(pw) < 8:
		return fmt.Errorf("%w: password must be at least 8 characters long", services.ErrInvalidInput)
	case !upperRe.MatchString(pw):
		return fmt.Errorf("%w: password must include at least one uppercase letter", services.ErrInvalidInput)
	case !lowerRe.MatchString(pw):
		return fmt.Errorf("%w: password must include at least one lowercase letter", services.ErrInvalidInput)
	case !numberRe.MatchString(pw):
		return fmt.Errorf("%w: password must include at least one number", services.ErrInvalidInput)
	case !symbolRe.MatchString(pw):
		return fmt.Errorf("%w: password must include at least one symbol", services.ErrInvalidInput)
	}
	return nil
}
