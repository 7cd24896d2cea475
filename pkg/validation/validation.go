// Package validation provides reusable input validators for interactive prompts.
//
// A validator is any func(string) error; nil means the input is acceptable.
// Validators are composable with All, and the helpers here cover the common
// cases: length bounds, regular expressions, numeric ranges, and URLs.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Func validates a single line of user input.
// A nil return means the input passed.
type Func func(input string) error

// All combines validators; the first failure wins.
func All(validators ...Func) Func {
	return func(input string) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v(input); err != nil {
				return err
			}
		}
		return nil
	}
}

// Required rejects empty (or all-whitespace) input.
func Required() Func {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("this field is required")
		}
		return nil
	}
}

// MinLength rejects input shorter than min characters.
func MinLength(min int) Func {
	return func(input string) error {
		if len(input) < min {
			return fmt.Errorf("must be at least %d characters", min)
		}
		return nil
	}
}

// MaxLength rejects input longer than max characters.
func MaxLength(max int) Func {
	return func(input string) error {
		if len(input) > max {
			return fmt.Errorf("must be no more than %d characters", max)
		}
		return nil
	}
}

// Matches rejects input that does not match the pattern. The message is shown
// to the user in place of the raw pattern when non-empty.
func Matches(pattern, message string) Func {
	re := regexp.MustCompile(pattern)
	return func(input string) error {
		if !re.MatchString(input) {
			if message != "" {
				return fmt.Errorf("%s", message)
			}
			return fmt.Errorf("input does not match required pattern: %s", pattern)
		}
		return nil
	}
}

// Integer rejects input that does not parse as a base-10 integer.
func Integer() Func {
	return func(input string) error {
		if _, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64); err != nil {
			return fmt.Errorf("please enter a valid integer")
		}
		return nil
	}
}

// IntegerRange rejects integers outside [min, max]. Nil bounds are open.
func IntegerRange(min, max *int64) Func {
	return func(input string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
		if err != nil {
			return fmt.Errorf("please enter a valid integer")
		}
		if min != nil && n < *min {
			return fmt.Errorf("must be at least %d", *min)
		}
		if max != nil && n > *max {
			return fmt.Errorf("must be no more than %d", *max)
		}
		return nil
	}
}

// Number rejects input that does not parse as a floating point number.
func Number() Func {
	return func(input string) error {
		if _, err := strconv.ParseFloat(strings.TrimSpace(input), 64); err != nil {
			return fmt.Errorf("please enter a valid number")
		}
		return nil
	}
}

// NumberRange rejects numbers outside [min, max]. Nil bounds are open.
func NumberRange(min, max *float64) Func {
	return func(input string) error {
		n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			return fmt.Errorf("please enter a valid number")
		}
		if min != nil && n < *min {
			return fmt.Errorf("must be at least %v", *min)
		}
		if max != nil && n > *max {
			return fmt.Errorf("must be no more than %v", *max)
		}
		return nil
	}
}

// HTTPSURL rejects input that is not an absolute http(s) URL.
func HTTPSURL() Func {
	return func(input string) error {
		u, err := url.Parse(strings.TrimSpace(input))
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("please enter a valid http(s) URL")
		}
		return nil
	}
}
