package routes

import (
	"github.com/kataras/iris/v12"

	"property-pulse-server/services"
	"property-pulse-server/utils"
)

// DeleteProperty removes one of the acting user's listings along with
// its stored images.
func DeleteProperty(ctx iris.Context) {
	propertyID := ctx.Params().GetUintDefault("id", 0)

	if err := propertyService().Delete(utils.ActingUserID(ctx), propertyID); err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// SearchProperties matches listings against free text and an optional
// type filter. Public: no session required.
func SearchProperties(ctx iris.Context) {
	input := services.SearchInput{
		Location:     ctx.URLParam("location"),
		PropertyType: ctx.URLParam("propertyType"),
	}

	properties, err := propertyService().Search(input)
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(properties)
}
