package theme

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the theme file format major version this package reads.
const SupportedMajor = "v1"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for theme files.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semver.IsValid(canonicalVersion(fl.Field().String()))
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color_token", func(fl validator.FieldLevel) bool {
			_, ok := tokens[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// convertValidationError turns the first validator failure into a readable error.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := yamlishFieldName(fe)
		if fe.Param() != "" {
			return fmt.Errorf("%s failed validation for tag '%s=%s'", field, fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%s failed validation for tag '%s'", field, fe.Tag())
	}
	return err
}

// yamlishFieldName drops the root struct name from the namespace.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
