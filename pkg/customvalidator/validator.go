// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"

	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует все наши кастомные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("maintenance_type", isKnownMaintenanceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("schedule_date", isParsableScheduleDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}

	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

func isKnownMaintenanceType(fl validator.FieldLevel) bool {
	return constants.IsKnownMaintenanceType(fl.Field().String())
}

// Пустое значение пропускаем - обязательность даты превентивного
// обслуживания проверяет сервис, здесь только формат.
func isParsableScheduleDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := utils.ParseScheduledDate(value)
	return err == nil
}
