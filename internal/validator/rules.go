package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"careercenter_backend/internal/models"
)

// registerCustomRules регистрирует кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - критическая ошибка запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-type", validateUserType)
	mustRegister("is-vacancy-status", validateVacancyStatus)
	mustRegister("is-granularity", validateGranularity)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения ловит 'required'
	}
	switch models.UserType(value) {
	case models.UserTypeStudent, models.UserTypeCompany,
		models.UserTypeUniversity, models.UserTypeModerator:
		return true
	}
	return false
}

func validateVacancyStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.VacancyStatus(value) {
	case models.VacancyStatusPending, models.VacancyStatusActive,
		models.VacancyStatusRejected, models.VacancyStatusArchived:
		return true
	}
	return false
}

func validateGranularity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Granularity(value) {
	case models.GranularityDay, models.GranularityWeek, models.GranularityMonth:
		return true
	}
	return false
}
