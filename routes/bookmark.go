package routes

import (
	"github.com/kataras/iris/v12"

	"property-pulse-server/utils"
)

// ToggleBookmark adds or removes the property from the acting user's
// bookmarks. Calling it twice toggles twice; use GetBookmarkStatus for
// a read-only check.
func ToggleBookmark(ctx iris.Context) {
	propertyID := ctx.Params().GetUintDefault("id", 0)

	result, err := bookmarkService().Toggle(utils.ActingUserID(ctx), propertyID)
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(result)
}

func GetBookmarkStatus(ctx iris.Context) {
	propertyID := ctx.Params().GetUintDefault("id", 0)

	status, err := bookmarkService().Status(utils.ActingUserID(ctx), propertyID)
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(status)
}

func GetSavedProperties(ctx iris.Context) {
	properties, err := bookmarkService().Saved(utils.ActingUserID(ctx))
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(properties)
}
