package config

import "fmt"

// Validate checks that the resolved configuration can seed a buildable and
// select an emitter.
func Validate(cfg Config) error {
	var errs []ValidationError

	if cfg.Type == "" {
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: "required field is empty; set it in a .csmake file (example: type: console)",
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.Framework == "" {
		errs = append(errs, ValidationError{
			Field:   "framework",
			Message: "required field is empty; set it in a .csmake file (example: framework: netcoreapp3.1)",
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(cfg.Sources) == 0 {
		errs = append(errs, ValidationError{
			Field:   "sources",
			Message: "at least one source pattern is required",
			Wrapped: ErrInvalidConfig,
		})
	}

	for i, s := range cfg.Sources {
		if s == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("sources[%d]", i),
				Message: "source patterns must not be empty",
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
