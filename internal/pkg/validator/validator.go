package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// имена полей в ошибках - как в JSON
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("address_country", validateCountryCode)
	_ = validate.RegisterValidation("address_field", validateAddressField)
	_ = validate.RegisterValidation("subdivision_id", validateSubdivisionID)
}

// Validate - валидация структуры. Нарушения возвращаются как ErrInvalidRequest
// с деталями вида {"field": "tag"}.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	details := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		details[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// address_country: две заглавные латинские буквы (ZZ допустим)
func validateCountryCode(fl validator.FieldLevel) bool {
	return domain.IsCountryCode(fl.Field().String())
}

// address_field: одно из девяти полей адреса
func validateAddressField(fl validator.FieldLevel) bool {
	return domain.Field(fl.Field().String()).IsValid()
}

func validateSubdivisionID(fl validator.FieldLevel) bool {
	_, ok := domain.SubdivisionCountry(fl.Field().String())
	return ok
}
