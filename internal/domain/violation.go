package domain

// ViolationFieldCountry - поле нарушений, относящихся к стране, а не к полю формата
const ViolationFieldCountry = "country_code"

// Violation - нарушение ограничений формата. Field - имя свойства адреса ("postal_code").
type Violation struct {
	Field        string `json:"field"`
	Message      string `json:"message"`
	InvalidValue string `json:"invalid_value,omitempty"`
}
