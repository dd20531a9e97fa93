// Package validation plugs go-playground/validator into echo.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/zykorwx/dapp/internal/apperror"
	"github.com/zykorwx/dapp/internal/dto"
)

// Validator implements echo.Validator. Every failure is reported as
// ErrIncompleteData; the field detail is kept for logging only.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the request rules registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(updateEmpleadoRules, dto.UpdateEmpleadoRequest{})
	return &Validator{validate: v}
}

// Validate checks i against its struct tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return &Failure{Cause: err}
	}
	return nil
}

// updateEmpleadoRules requires the activo key on updates, null included
func updateEmpleadoRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.UpdateEmpleadoRequest)
	if !req.Activo.Present() {
		sl.ReportError(req.Activo, "Activo", "activo", "present", "")
	}
}

// Failure wraps the validator error and unwraps to ErrIncompleteData
type Failure struct {
	Cause error
}

func (f *Failure) Error() string {
	return f.Cause.Error()
}

func (f *Failure) Unwrap() error {
	return apperror.ErrIncompleteData
}

// Fields lists the rejected fields and the rule they broke
func (f *Failure) Fields() map[string]string {
	out := map[string]string{}
	if errs, ok := f.Cause.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
