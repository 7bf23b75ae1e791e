package validators

import (
	"reflect"

	"entitysearch/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// Register installs the custom tags on validate.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("registryid", RegistryIdentifier)
}

// RegistryIdentifier accepts registry business identifiers such as BC1234567.
func RegistryIdentifier(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'registryid' applied to non-string type: %s\n", field.Kind().String())
		return false
	}
	return utils.IsIdentifierValid(field.String())
}
