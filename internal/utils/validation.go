package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	MsgTitleRequired       = "Title is required"
	MsgTitleTooLong        = "Title must be 100 characters or less"
	MsgDescriptionRequired = "Description is required"
	MsgPriceNotPositive    = "Price must be greater than 0"
	MsgDurationNotPositive = "Duration must be greater than 0"
)

// ServiceForm: форма провайдера при добавлении и правке услуги.
// Duration в минутах.
type ServiceForm struct {
	Title       string
	Description string
	Price       float64
	Duration    int
}

type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type formRule struct {
	value func(ServiceForm) any
	tag   string
	msg   string
}

// Проверяются по порядку, выполняются все правила.
var formRules = []formRule{
	{func(f ServiceForm) any { return strings.TrimSpace(f.Title) }, "required", MsgTitleRequired},
	{func(f ServiceForm) any { return f.Title }, "max=100", MsgTitleTooLong},
	{func(f ServiceForm) any { return strings.TrimSpace(f.Description) }, "required", MsgDescriptionRequired},
	{func(f ServiceForm) any { return f.Price }, "gt=0", MsgPriceNotPositive},
	{func(f ServiceForm) any { return f.Duration }, "gt=0", MsgDurationNotPositive},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// ValidateService возвращает все нарушенные правила формы.
func ValidateService(f ServiceForm) ValidationResult {
	errs := make([]string, 0, len(formRules))
	for _, r := range formRules {
		if err := validate.Var(r.value(f), r.tag); err != nil {
			errs = append(errs, r.msg)
		}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

var durationUnit = regexp.MustCompile(`(?i)(minute|min|hour|hr|\d\s*h\b|\d\s*m\b)`)

// HasDurationUnit: указана ли в тексте единица времени:
// "60 minutes", "1 hr", "90 mins", "1h 30m".
func HasDurationUnit(s string) bool {
	return durationUnit.MatchString(s)
}

// RegisterValidators регистрирует теги каталога в v:
//
//	duration_unit  пусто или текст, принятый HasDurationUnit
//	notblank       строка не из одних пробелов
func RegisterValidators(v *validator.Validate) error {
	err := v.RegisterValidation("duration_unit", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || HasDurationUnit(s)
	})
	if err != nil {
		return err
	}
	return v.RegisterValidation("notblank", validators.NotBlank)
}
