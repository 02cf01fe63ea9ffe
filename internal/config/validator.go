package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"speedtune/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // e.g. "filter.max_speed" or "units[2].base"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks Settings and returns every problem found
func (s *Settings) Validate() []ValidationError {
	var errors []ValidationError

	f := s.Filter
	if f.MinSpeed > f.MaxSpeed {
		errors = append(errors, ValidationError{
			Field:   "filter.min_speed",
			Value:   f.MinSpeed,
			Message: fmt.Sprintf("must not exceed filter.max_speed (%v)", f.MaxSpeed),
		})
	}
	if f.MinCost > f.MaxCost {
		errors = append(errors, ValidationError{
			Field:   "filter.min_cost",
			Value:   f.MinCost,
			Message: fmt.Sprintf("must not exceed filter.max_cost (%d)", f.MaxCost),
		})
	}
	for i, m := range f.Turns {
		if m < 1 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("filter.turns[%d]", i),
				Value:   m,
				Message: "must be positive",
			})
		}
	}

	for id, n := range s.Times {
		if n < 1 {
			errors = append(errors, ValidationError{
				Field:   "times." + id,
				Value:   n,
				Message: "must be at least 1",
			})
		}
	}

	if !slices.Contains(ValidOutputFormats(), s.Output.Format) {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Value:   s.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
		})
	}
	if s.Logging.Level != "" && !logging.IsValidLevel(s.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   s.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(logging.ValidLevels(), ", "))),
		})
	}

	return errors
}

// Validate checks a roster definition
func (rc *RosterConfig) Validate() []ValidationError {
	var errors []ValidationError
	seen := map[string]int{}

	for i, u := range rc.Units {
		field := func(name string) string { return fmt.Sprintf("units[%d].%s", i, name) }

		if strings.TrimSpace(u.ID) == "" {
			errors = append(errors, ValidationError{Field: field("id"), Value: u.ID, Message: "must not be empty"})
		} else if u.ID != strings.ToLower(u.ID) {
			// viper 会把配置文件里 times 的 key 转成小写
			errors = append(errors, ValidationError{Field: field("id"), Value: u.ID, Message: "must be lowercase"})
		} else if prev, dup := seen[u.ID]; dup {
			errors = append(errors, ValidationError{
				Field:   field("id"),
				Value:   u.ID,
				Message: fmt.Sprintf("duplicates units[%d]", prev),
			})
		} else {
			seen[u.ID] = i
		}
		if strings.TrimSpace(u.Base) == "" {
			errors = append(errors, ValidationError{Field: field("base"), Value: u.Base, Message: "must not be empty"})
		}
		if u.Cost < 0 {
			errors = append(errors, ValidationError{Field: field("cost"), Value: u.Cost, Message: "must be non-negative"})
		}
		if u.Times < 0 {
			errors = append(errors, ValidationError{Field: field("times"), Value: u.Times, Message: "must be non-negative (0 means 1)"})
		}
		if msg := checkRatio(u.SpdPct); msg != "" {
			errors = append(errors, ValidationError{Field: field("spd_pct"), Value: u.SpdPct, Message: msg})
		}
		if msg := checkRatio(u.Advance); msg != "" {
			errors = append(errors, ValidationError{Field: field("advance"), Value: u.Advance, Message: msg})
		}
	}

	return errors
}

func checkRatio(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "must be a finite number"
	case v < 0:
		return "must be non-negative"
	}
	return ""
}
