package validation

import (
	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the enum tags used in request DTOs to gin's validator engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding validator is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"booking_status": func(fl validator.FieldLevel) bool {
			_, err := booking.ParseStatus(fl.Field().String())
			return err == nil
		},
		"payment_method": func(fl validator.FieldLevel) bool {
			_, err := booking.ParsePaymentMethod(fl.Field().String())
			return err == nil
		},
		"user_role": func(fl validator.FieldLevel) bool {
			_, err := user.NewRole(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrap(err, "register validation "+tag)
		}
	}
	return nil
}

// FieldErrors flattens validator errors into field -> failed tag, for the envelope's detail.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
