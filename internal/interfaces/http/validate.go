package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/dto"
)

// validate instância partilhada do validador; reporta os nomes dos campos
// pelo tag json/query para que os erros batam certo com os payloads.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindBody faz parse e validação do corpo JSON. Devolve false com a resposta
// 400 já escrita; nesse caso o handler deve retornar nil.
func bindBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		return false
	}
	return validarStruct(c, out)
}

// bindQuery faz parse e validação da query string.
func bindQuery(c *fiber.Ctx, out any) bool {
	if err := c.QueryParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
		return false
	}
	return validarStruct(c, out)
}

func validarStruct(c *fiber.Ctx, out any) bool {
	err := validate.Struct(out)
	if err == nil {
		return true
	}
	msg := "validação falhou"
	if errs, ok := err.(validator.ValidationErrors); ok {
		campos := make([]string, 0, len(errs))
		for _, fe := range errs {
			campos = append(campos, fe.Field())
		}
		msg += ": " + strings.Join(campos, ", ")
	}
	_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	return false
}
