package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// CreateError stops the request with a structured error body.
// No stack traces or internal identifiers reach the caller.
func CreateError(statusCode int, code string, message string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{
		"error":   code,
		"message": message,
	})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "INTERNAL", "An internal server error occurred.", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "NOT_FOUND", "Resource not found.", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusConflict, "CONFLICT", "Email already registered.", ctx)
}

// HandleValidationErrors converts validator failures into a 400 VALIDATION
// body listing each offending field; anything else becomes a 500.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
				"value": fieldErr.Param(),
			})
		}
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":   "VALIDATION",
			"message": "One or more fields failed validation.",
			"fields":  fields,
		})
		return
	}

	CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid request body.", ctx)
}
