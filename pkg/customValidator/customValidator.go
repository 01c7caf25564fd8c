package customvalidator

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jecitDev/jec-imap-helper/pkg/imapDateTime"
)

type CustomValidator struct {
	Validator *validator.Validate
}

// NewCustomValidator builds a validator with the IMAP date validations
// registered:
//
//	imapdatetime - string field must parse as "dd-Mmm-yyyy hh:mm:ss +zzzz"
//	imapdate     - string field must parse as "dd-Mmm-yyyy"
//
// imapdatetime.DateTime fields are validated through their canonical string
// form, so string tags apply to them directly.
func NewCustomValidator() *CustomValidator {
	valCustom := validator.New()
	valCustom.RegisterCustomTypeFunc(validateDateTimeValue, imapdatetime.DateTime{})
	valCustom.RegisterCustomTypeFunc(validateTime, time.Time{})
	valCustom.RegisterValidation("imapdatetime", validateIMAPDateTime)
	valCustom.RegisterValidation("imapdate", validateIMAPDate)
	return &CustomValidator{Validator: valCustom}
}

func validateIMAPDateTime(fl validator.FieldLevel) bool {
	_, err := imapdatetime.Parse(fl.Field().String())
	return err == nil
}

func validateIMAPDate(fl validator.FieldLevel) bool {
	_, err := imapdatetime.ParseDate(fl.Field().String())
	return err == nil
}

func validateDateTimeValue(field reflect.Value) interface{} {
	if dt, ok := field.Interface().(imapdatetime.DateTime); ok {
		return imapdatetime.Format(dt)
	}
	return nil
}

func validateTime(field reflect.Value) interface{} {
	if timeVal, ok := field.Interface().(time.Time); ok {
		minTime := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
		if timeVal.After(minTime) {
			return field
		}
	}
	return nil
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.Validator.Struct(i)
}

// GrpcErrorHandler translates validator.ValidationErrors coming out of a
// handler into an InvalidArgument status with per-field messages.
func GrpcErrorHandler() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, err
		}
		var message []string
		if castedObject, ok := err.(validator.ValidationErrors); ok {
			for _, err := range castedObject {
				switch err.Tag() {
				case "required":
					message = append(message, fmt.Sprintf("%s is required",
						err.Field()))
				case "imapdatetime":
					message = append(message, fmt.Sprintf("%s value must be an IMAP date-time (dd-Mmm-yyyy hh:mm:ss +zzzz)",
						err.Field()))
				case "imapdate":
					message = append(message, fmt.Sprintf("%s value must be an IMAP date (dd-Mmm-yyyy)",
						err.Field()))
				case "gte":
					message = append(message, fmt.Sprintf("%s value must be greater than %s",
						err.Field(), err.Param()))
				case "lte":
					message = append(message, fmt.Sprintf("%s value must be lower than %s",
						err.Field(), err.Param()))
				}
			}
		}
		if len(message) > 0 {
			err = status.Errorf(codes.InvalidArgument, "%+v", message)
		}

		return resp, err
	}
}
