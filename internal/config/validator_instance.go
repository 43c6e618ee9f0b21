package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	taskIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

	// conditionTypes mirrors the condition factories registered at startup.
	conditionTypes = map[string]struct{}{
		"env_set":            {},
		"file_present":       {},
		"path_writable":      {},
		"mutually_exclusive": {},
	}
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("task_id", func(fl validator.FieldLevel) bool {
			return taskIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("condition_type", func(fl validator.FieldLevel) bool {
			_, ok := conditionTypes[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
