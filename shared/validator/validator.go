package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"eventbook/shared/constant"
	"eventbook/shared/failure"

	"github.com/gin-gonic/gin/binding"
	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		panic(err)
	}
}

// Bind decodes the request body into data according to its Content-Type. JSON and
// url-encoded forms are supported; form fields are matched by their `form` tag and
// converted to the field type. Bind does not validate.
func Bind[T any](request *http.Request, data *T) error {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get(constant.RequestHeaderContentType))

	switch mediaType {
	case constant.ContentTypeFormURLEncoded:
		request.Body = http.MaxBytesReader(nil, request.Body, constant.RequestMaxMemory)

		if err := binding.FormPost.Bind(request, data); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to decode form body: %w", err)) //nolint:wrapcheck
		}

		return nil
	default:
		return decodeJSON(http.MaxBytesReader(nil, request.Body, constant.RequestMaxMemory), data)
	}
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func decodeJSON[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}
