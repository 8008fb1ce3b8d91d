package validation

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"codequiz/internal/domain"
	"codequiz/internal/dto"

	"github.com/go-playground/validator/v10"
)

const maxFilterLength = 50

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateCheckAnswerRequest validates the check answer request body
func (v *Validator) ValidateCheckAnswerRequest(req *dto.CheckAnswerRequest) domain.ValidationErrors {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}

	var errs domain.ValidationErrors
	for _, fe := range fieldErrs {
		name := jsonFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			errs = append(errs, domain.NewMissingFieldError(name))
		case "max":
			max, _ := strconv.Atoi(fe.Param())
			errs = append(errs, domain.NewOutOfRangeError(name, utf8.RuneCountInString(fe.Value().(string)), 0, max))
		default:
			errs = append(errs, domain.NewInvalidFormatError(name, fe.Value()))
		}
	}
	return errs
}

// ValidateFilters validates the difficulty and type query parameters
func (v *Validator) ValidateFilters(difficulty, questionType string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if n := utf8.RuneCountInString(strings.TrimSpace(difficulty)); n > maxFilterLength {
		errs = append(errs, domain.NewOutOfRangeError("difficulty", n, 0, maxFilterLength))
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(questionType)); n > maxFilterLength {
		errs = append(errs, domain.NewOutOfRangeError("type", n, 0, maxFilterLength))
	}
	return errs
}

// ParseForce reads the force query parameter. Empty means false.
func (v *Validator) ParseForce(raw string) (bool, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return false, nil
	}
	force, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, domain.ValidationErrors{domain.NewInvalidFormatError("force", raw)}
	}
	return force, nil
}

// ParseField validates a field name used for distinct value lookups
func (v *Validator) ParseField(raw string) (domain.Field, domain.ValidationErrors) {
	field, ok := domain.ParseField(raw)
	if !ok || (field != domain.FieldDifficulty && field != domain.FieldType) {
		return "", domain.ValidationErrors{domain.NewInvalidFormatError("field", raw)}
	}
	return field, nil
}

func jsonFieldName(structField string) string {
	switch structField {
	case "QuestionID":
		return "question_id"
	case "Answer":
		return "answer"
	default:
		return strings.ToLower(structField)
	}
}
