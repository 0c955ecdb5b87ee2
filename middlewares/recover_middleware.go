package middlewares

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/phxsec/phoenixportal/monitoring"
)

func recovermiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					stack := make([]byte, 4<<10) // 4 KB
					length := runtime.Stack(stack, false)

					monitoring.RecoverAndAlert("recovered from panic in http handler", err)
					fmt.Println("Stack trace:", string(stack[:length]))

					returnErr = echo.NewHTTPError(500, http.StatusText(http.StatusInternalServerError)).WithInternal(err)
				}
			}()
			return next(ctx)
		}
	}
}
