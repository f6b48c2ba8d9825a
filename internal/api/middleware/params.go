package middleware

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/core/domain"
)

// PathID parses the {id} path parameter.
func PathID(c echo.Context) (int64, error) {
	var id int64
	err := echo.PathParamsBinder(c).Int64("id", &id).BindError()
	return id, ParamError(err)
}

// ParamError turns an echo binding failure into the validation message
// clients expect. Other errors pass through.
func ParamError(err error) error {
	if err == nil {
		return nil
	}
	var be *echo.BindingError
	if errors.As(err, &be) {
		var value string
		if len(be.Values) > 0 {
			value = be.Values[0]
		}
		return domain.Validation(fmt.Sprintf("Invalid value '%s' for parameter '%s'", value, be.Field))
	}
	return err
}
