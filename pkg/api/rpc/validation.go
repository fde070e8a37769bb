package rpc

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const requiredText = "{0} is required"

// requestValidator checks incoming messages and reports failures with the
// JSON field names a caller sent.
type requestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newRequestValidator() *requestValidator {
	validate := validator.New()

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("failed to register validation translations: %s", err))
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.RegisterTranslation(
		"required", translator,
		func(t ut.Translator) error { return t.Add("required", requiredText, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T("required", fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:])
			return s
		},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to register the required translation: %s", err))
	}

	return &requestValidator{
		validate:   validate,
		translator: translator,
	}
}

// Validate returns nil or an InvalidArgument status listing every failure.
func (v *requestValidator) Validate(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Translate(v.translator))
	}

	return status.Error(codes.InvalidArgument, strings.Join(messages, "; "))
}
