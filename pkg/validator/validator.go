package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := getFieldErrorMessage(fieldError)
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s zorunludur", field)
	case "email":
		return fmt.Sprintf("%s geçerli bir e-posta olmalıdır", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s en az %s karakter olmalıdır", field, fe.Param())
		}
		return fmt.Sprintf("%s en az %s olmalıdır", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s en fazla %s karakter olmalıdır", field, fe.Param())
		}
		return fmt.Sprintf("%s en fazla %s olmalıdır", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s şunlardan biri olmalıdır: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s geçersiz", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Username":     "Kullanıcı adı",
		"Email":        "E-posta",
		"Password":     "Şifre",
		"Baslik":       "Başlık",
		"Aciklama":     "Açıklama",
		"Icerik":       "İçerik",
		"GrupAdi":      "Grup adı",
		"Secenekler":   "Seçenekler",
		"OptionID":     "Seçenek ID",
		"ReactionType": "Reaksiyon türü",
		"Role":         "Rol",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
