package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrRequired is reported by Rules when a required value is missing.
var ErrRequired = errors.New("required")

// Rules is the compiled form of a ValidationRule list.
type Rules struct {
	Required bool

	min, max                   *float64
	exclusiveMin, exclusiveMax bool
	minLen, maxLen             *int
	pattern                    *regexp.Regexp
}

// CompileRules parses rule parameters. Malformed parameters are ignored so a
// bad schema never makes a field impossible to fill.
func CompileRules(required bool, rules []ValidationRule) Rules {
	compiled := Rules{Required: required}
	for _, v := range rules {
		switch v.Kind {
		case ValidationRuleMin:
			if val, ok := parseFloat(v.Params["value"]); ok {
				compiled.min = &val
				compiled.exclusiveMin = v.Params["exclusive"] == "true"
			}
		case ValidationRuleMax:
			if val, ok := parseFloat(v.Params["value"]); ok {
				compiled.max = &val
				compiled.exclusiveMax = v.Params["exclusive"] == "true"
			}
		case ValidationRuleMinLength:
			if val, ok := parseInt(v.Params["value"]); ok {
				compiled.minLen = &val
			}
		case ValidationRuleMaxLength:
			if val, ok := parseInt(v.Params["value"]); ok {
				compiled.maxLen = &val
			}
		case ValidationRulePattern:
			if expr := v.Params["pattern"]; expr != "" {
				if re, err := regexp.Compile(expr); err == nil {
					compiled.pattern = re
				}
			}
		}
	}
	return compiled
}

// ValidateString checks required, length and pattern constraints. Empty
// optional values always pass.
func (r Rules) ValidateString(value string) error {
	if strings.TrimSpace(value) == "" {
		if r.Required {
			return ErrRequired
		}
		return nil
	}
	length := utf8.RuneCountInString(value)
	if r.minLen != nil && length < *r.minLen {
		return fmt.Errorf("min length %d", *r.minLen)
	}
	if r.maxLen != nil && length > *r.maxLen {
		return fmt.Errorf("max length %d", *r.maxLen)
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return errors.New("does not match required pattern")
	}
	return nil
}

// ValidateNumber checks numeric bounds.
func (r Rules) ValidateNumber(v float64) error {
	if r.min != nil {
		if r.exclusiveMin && v <= *r.min {
			return fmt.Errorf("must be greater than %v", *r.min)
		}
		if v < *r.min {
			return fmt.Errorf("min %v", *r.min)
		}
	}
	if r.max != nil {
		if r.exclusiveMax && v >= *r.max {
			return fmt.Errorf("must be less than %v", *r.max)
		}
		if v > *r.max {
			return fmt.Errorf("max %v", *r.max)
		}
	}
	return nil
}

// Rule helpers keep call sites terse when building models by hand.

// MinLength returns a minLength rule.
func MinLength(n int) ValidationRule {
	return ValidationRule{Kind: ValidationRuleMinLength, Params: map[string]string{"value": strconv.Itoa(n)}}
}

// MaxLength returns a maxLength rule.
func MaxLength(n int) ValidationRule {
	return ValidationRule{Kind: ValidationRuleMaxLength, Params: map[string]string{"value": strconv.Itoa(n)}}
}

// Min returns an inclusive lower bound.
func Min(v float64) ValidationRule {
	return ValidationRule{Kind: ValidationRuleMin, Params: map[string]string{"value": formatFloat(v)}}
}

// Max returns an inclusive upper bound.
func Max(v float64) ValidationRule {
	return ValidationRule{Kind: ValidationRuleMax, Params: map[string]string{"value": formatFloat(v)}}
}

// Pattern returns a regular expression rule.
func Pattern(expr string) ValidationRule {
	return ValidationRule{Kind: ValidationRulePattern, Params: map[string]string{"pattern": expr}}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	return val, err == nil
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	return val, err == nil
}
