package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"template-service-backend/internal/database/models"
	apperrors "template-service-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator checks raw operation payloads and turns them into typed requests.
// It holds no mutable state after New returns and is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

type normalizer interface {
	normalize()
}

type refiner interface {
	refine(issues apperrors.ValidationErrors) apperrors.ValidationErrors
}

// New registers the template rules on validate and returns a Validator using it.
func New(validate *validator.Validate) (*Validator, error) {
	if validate == nil {
		validate = validator.New()
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(nullable).fieldValue()
	}, Nullable[string]{}, Nullable[models.DocumentAccessAuth]{}, Nullable[models.DocumentActionAuth]{})

	rules := map[string]validator.Func{
		"template_type":         enumRule[models.TemplateType](),
		"distribution_method":   enumRule[models.DocumentDistributionMethod](),
		"signing_order":         enumRule[models.DocumentSigningOrder](),
		"access_auth":           enumRule[models.DocumentAccessAuth](),
		"action_auth":           enumRule[models.DocumentActionAuth](),
		"recipient_action_auth": enumRule[models.RecipientActionAuth](),
		"language_code":         enumRule[models.LanguageCode](),
		"redirect_url": func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || IsValidRedirectURL(value)
		},
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %s rule: %w", tag, err)
		}
	}

	return &Validator{validate: validate}, nil
}

func enumRule[T interface {
	~string
	IsValid() bool
}]() validator.Func {
	return func(fl validator.FieldLevel) bool {
		return T(fl.Field().String()).IsValid()
	}
}

// validateInto runs the full pipeline for one request type: shape, normalize,
// field rules, then cross-field refinements. Every issue found is returned.
func validateInto[T any](v *Validator, raw []byte) (*T, error) {
	dst := new(T)
	issues, ok := decodePayload(raw, dst)
	if !ok {
		return nil, issues
	}

	if n, ok := any(dst).(normalizer); ok {
		n.normalize()
	}

	if err := v.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("failed to validate payload: %w", err)
		}
		shapeIssues := append(apperrors.ValidationErrors(nil), issues...)
		for _, fe := range fieldErrs {
			path := namespacePath(fe.Namespace())
			if coveredBy(shapeIssues, path) {
				continue
			}
			issues.Add(path, message(fe))
		}
	}

	if r, ok := any(dst).(refiner); ok {
		issues = append(issues, r.refine(issues)...)
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return dst, nil
}

// coveredBy reports whether an issue was already recorded at path or at one
// of its parents. Values that failed the shape pass reach the field rules as
// zero values and would otherwise be reported twice.
func coveredBy(issues apperrors.ValidationErrors, path string) bool {
	for _, issue := range issues {
		if issue.Field == "" || issue.Field == path || strings.HasPrefix(path, issue.Field+".") {
			return true
		}
	}
	return false
}

// namespacePath turns "UpdateTemplateSettingsRequest.data.publicTitle" or
// "FindTemplatesQuery.FindSearchParams.page" into a dotted JSON path.
func namespacePath(ns string) string {
	segments := strings.Split(ns, ".")
	parts := make([]string, 0, len(segments))
	for i, segment := range segments {
		if i == 0 {
			continue
		}
		name, index, hasIndex := strings.Cut(segment, "[")
		if name != "" && name[0] >= 'A' && name[0] <= 'Z' {
			// embedded struct
			continue
		}
		parts = append(parts, name)
		if hasIndex {
			parts = append(parts, strings.TrimSuffix(index, "]"))
		}
	}
	return strings.Join(parts, ".")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return boundMessage(fe.Kind(), "at least", "greater than or equal to", fe.Param())
	case "max":
		return boundMessage(fe.Kind(), "at most", "less than or equal to", fe.Param())
	case "email":
		return "Invalid email"
	case "redirect_url":
		return RedirectURLMessage
	case "template_type":
		return enumMessage(models.TemplateTypeValues(), valueString(fe.Value()))
	case "distribution_method":
		return enumMessage(models.DistributionMethodValues(), valueString(fe.Value()))
	case "signing_order":
		return enumMessage(models.SigningOrderValues(), valueString(fe.Value()))
	case "access_auth":
		return enumMessage(models.DocumentAccessAuthValues(), valueString(fe.Value()))
	case "action_auth":
		return enumMessage(models.DocumentActionAuthValues(), valueString(fe.Value()))
	case "recipient_action_auth":
		return enumMessage(models.RecipientActionAuthValues(), valueString(fe.Value()))
	case "language_code":
		return enumMessage(models.SupportedLanguageCodes(), valueString(fe.Value()))
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}

func boundMessage(kind reflect.Kind, textBound, numberBound, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("String must contain %s %s character(s)", textBound, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("Array must contain %s %s element(s)", textBound, param)
	default:
		return fmt.Sprintf("Number must be %s %s", numberBound, param)
	}
}

func enumMessage(values []string, received string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", strings.Join(quoted, " | "), received)
}

func valueString(value any) string {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	return fmt.Sprint(rv.Interface())
}
