package request

import (
	"sync"

	"care-booking/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the booking tags to gin's validator engine:
//   - pillar:  one of the four care pillars
//   - hhmm:    24h "HH:MM"
//   - isodate: "YYYY-MM-DD"
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = registerOn(v)
	})
	return err
}

func registerOn(v *validator.Validate) error {
	if err := v.RegisterValidation("pillar", validatePillar); err != nil {
		return err
	}
	if err := v.RegisterValidation("hhmm", validateClockTime); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", validateDate)
}

func validatePillar(fl validator.FieldLevel) bool {
	return booking.Pillar(fl.Field().String()).IsValid()
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := booking.ParseClockTime(fl.Field().String())
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := booking.ParseDate(fl.Field().String())
	return err == nil
}
