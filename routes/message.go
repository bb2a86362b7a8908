package routes

import (
	"github.com/kataras/iris/v12"

	"property-pulse-server/services"
	"property-pulse-server/utils"
)

// CreateMessage sends a listing enquiry from the acting user. A
// self-addressed message comes back 200 with {"error": ...} rather than
// a failure status: the form renders it inline.
func CreateMessage(ctx iris.Context) {
	var input services.SendMessageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result, err := messageService().Send(utils.ActingUserID(ctx), input)
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(result)
}

// GetInbox returns the acting user's messages, unread first, each
// partition newest first. An empty inbox is an empty array, not an
// error.
func GetInbox(ctx iris.Context) {
	views, err := messageService().Inbox(utils.ActingUserID(ctx))
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(views)
}

// MarkMessageRead toggles the read flag of one of the acting user's
// messages.
func MarkMessageRead(ctx iris.Context) {
	messageID := ctx.Params().GetUintDefault("id", 0)

	result, err := messageService().MarkRead(utils.ActingUserID(ctx), messageID)
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(result)
}

func GetUnreadCount(ctx iris.Context) {
	count, err := messageService().UnreadCount(utils.ActingUserID(ctx))
	if err != nil {
		handleServiceError(err, ctx)
		return
	}

	ctx.JSON(iris.Map{"count": count})
}
