package shared

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phxsec/phoenixportal/database/models"
)

const accessTokenKey = "accessToken"

func SetAccessToken(ctx Context, token models.AccessToken) {
	ctx.Set(accessTokenKey, token)
}

// GetAccessToken panics if the middleware chain did not authenticate the
// request. Admin routes always run behind the token middleware.
func GetAccessToken(ctx Context) models.AccessToken {
	token, ok := ctx.Get(accessTokenKey).(models.AccessToken)
	if !ok {
		panic("no access token in context")
	}
	return token
}

func getUUIDParam(ctx Context, name string) (uuid.UUID, error) {
	param := SanitizeParam(ctx.Param(name))
	if param == "" {
		return uuid.Nil, fmt.Errorf("missing %s parameter", name)
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return id, nil
}

func GetReportID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "reportID")
}

func GetHunterID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "hunterID")
}

func GetEventID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "eventID")
}

func GetRegistrationID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "registrationID")
}
