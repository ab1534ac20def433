package validation

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Rule is one declarative field check: a field name, a validator tag (or a
// custom predicate), and an optional message override. Rules are pure and
// never touch the database.
type Rule struct {
	Field   string
	Tag     string
	Message string
	// Check, when set, replaces the tag-based validation. It receives the raw
	// decoded JSON value and whether the field appeared in the body.
	Check func(value interface{}, present bool) bool
}

// FieldError is one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Apply returns a fiber pre-handler that runs the rules against the JSON
// body and short-circuits with 400 on the first failure. The response
// carries the first failing rule's message plus the full error list.
func Apply(rules ...Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]interface{}
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &body); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": "Invalid request body",
				})
			}
		}

		errs := Run(body, rules)
		if len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": errs[0].Message,
				"errors":  errs,
			})
		}

		return c.Next()
	}
}

// Run evaluates every rule and collects all failures, in rule order.
func Run(body map[string]interface{}, rules []Rule) []FieldError {
	var errs []FieldError

	for _, rule := range rules {
		value, present := body[rule.Field]

		if rule.Check != nil {
			if !rule.Check(value, present) {
				errs = append(errs, FieldError{Field: rule.Field, Message: messageOrDefault(rule, nil)})
			}
			continue
		}

		if !present || value == nil {
			if hasRequired(rule.Tag) {
				errs = append(errs, FieldError{Field: rule.Field, Message: messageOrDefault(rule, nil)})
			}
			continue
		}

		if err := validate.Var(value, rule.Tag); err != nil {
			var fieldErr validator.FieldError
			if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
				fieldErr = verrs[0]
			}
			errs = append(errs, FieldError{Field: rule.Field, Message: messageOrDefault(rule, fieldErr)})
		}
	}

	return errs
}

func hasRequired(tag string) bool {
	for _, part := range strings.Split(tag, ",") {
		if part == "required" {
			return true
		}
	}
	return false
}

func messageOrDefault(rule Rule, err validator.FieldError) string {
	if rule.Message != "" {
		return rule.Message
	}
	if err == nil {
		return rule.Field + " is required"
	}
	return rule.Field + " " + tagMessage(err)
}

// tagMessage maps a failed validator tag to a human readable message
func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "len":
		return "must be exactly " + e.Param() + " characters"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lt":
		return "must be less than " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "numeric":
		return "must be numeric"
	default:
		return "is invalid"
	}
}
