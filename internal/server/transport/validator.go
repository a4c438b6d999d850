package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/contactkeeper/internal/validation"
)

// echoValidator adapts the shared validation rules so Echo can call
// c.Validate(req). Violations surface as 400 with the rule's message in the
// detail envelope.
type echoValidator struct {
	v *validation.Validator
}

func newValidator() *echoValidator {
	return &echoValidator{v: validation.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
