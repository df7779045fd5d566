package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "checkout.default_step")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
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

// currencyRegex validates ISO 4217 currency codes
var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateShop()...)
	errors = append(errors, c.validateCheckout()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateShop validates the ShopConfig
func (c *Config) validateShop() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.Shop.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "shop.base_url",
			Value:   c.Shop.BaseURL,
			Message: "must be an absolute URL with scheme and host",
		})
	}

	if !currencyRegex.MatchString(c.Shop.Currency) {
		errors = append(errors, ValidationError{
			Field:   "shop.currency",
			Value:   c.Shop.Currency,
			Message: "must be a three-letter uppercase currency code",
		})
	}

	return errors
}

// validateCheckout validates the CheckoutConfig. When a flow file is
// configured its contents are validated by the flow loader, not here.
func (c *Config) validateCheckout() []ValidationError {
	var errors []ValidationError

	if c.Checkout.FlowFile != "" {
		return errors
	}

	if len(c.Checkout.Steps) == 0 {
		errors = append(errors, ValidationError{
			Field:   "checkout.steps",
			Value:   c.Checkout.Steps,
			Message: "must list at least one step",
		})
		return errors
	}

	seen := make(map[string]struct{}, len(c.Checkout.Steps))
	for _, s := range c.Checkout.Steps {
		if _, dup := seen[s]; dup {
			errors = append(errors, ValidationError{
				Field:   "checkout.steps",
				Value:   s,
				Message: "step names must be unique",
			})
		}
		seen[s] = struct{}{}
	}

	for _, s := range c.Checkout.OnePageSteps {
		if _, ok := seen[s]; !ok {
			errors = append(errors, ValidationError{
				Field:   "checkout.one_page_steps",
				Value:   s,
				Message: "must be a member of checkout.steps",
			})
		}
	}

	if c.Checkout.DefaultStep == "" {
		errors = append(errors, ValidationError{
			Field:   "checkout.default_step",
			Value:   c.Checkout.DefaultStep,
			Message: "must name a step",
		})
	} else if _, ok := seen[c.Checkout.DefaultStep]; !ok {
		errors = append(errors, ValidationError{
			Field:   "checkout.default_step",
			Value:   c.Checkout.DefaultStep,
			Message: "must be a member of checkout.steps",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
