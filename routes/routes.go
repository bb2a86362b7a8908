package routes

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"

	"property-pulse-server/services"
	"property-pulse-server/storage"
	"property-pulse-server/utils"
)

func bookmarkService() *services.BookmarkService {
	return services.NewBookmarkService(
		&storage.Users{DB: storage.DB},
		&storage.Properties{DB: storage.DB},
		storage.NewPageCache(),
	)
}

// Validate is the single validator instance: main wires it into
// app.Validator and the services validate with it too, so custom
// registrations cannot diverge.
var Validate = validator.New()

func messageService() *services.MessageService {
	return services.NewMessageService(&storage.Messages{DB: storage.DB}, Validate)
}

func propertyService() *services.PropertyService {
	return services.NewPropertyService(
		&storage.Properties{DB: storage.DB},
		storage.NewCloudinary(),
		storage.NewPageCache(),
	)
}

// handleServiceError maps the domain error taxonomy onto HTTP. The soft
// error channel (SendResult.Error) never reaches this function.
func handleServiceError(err error, ctx iris.Context) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		utils.CreateUnauthorized(ctx)
	case errors.Is(err, services.ErrNotFound):
		utils.CreateNotFound(ctx)
	case errors.Is(err, services.ErrUnauthorized):
		utils.CreateForbidden(ctx)
	default:
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.HandleValidationErrors(err, ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
	}
}
