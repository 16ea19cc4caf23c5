package alert

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	traits "github.com/shadowbane/weather-alert/pkg/traits/controller-traits"
	"go.uber.org/zap"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	"github.com/shadowbane/phoenix-aid/pkg/registry"
	"github.com/shadowbane/phoenix-aid/pkg/tabular"
)

type broadcastRequest struct {
	Location string `json:"location"`
	Radius   string `json:"radius"`
	Message  string `json:"message"`
}

// Broadcast handles POST /api/v1/alerts. Duplicate broadcasts are
// rejected with 409 and the conflicting radius so the sender can
// correct the input.
func Broadcast(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		var req broadcastRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}

		stored, err := app.Registry.Broadcast(registry.Candidate{
			Location: req.Location,
			Radius:   req.Radius,
			Message:  req.Message,
		})
		if err != nil {
			var validationErr *registry.ValidationError
			var duplicateErr *registry.DuplicateError
			switch {
			case errors.As(err, &validationErr):
				traits.WriteErrorResponse(w, http.StatusBadRequest, validationErr.Error())
			case errors.As(err, &duplicateErr):
				traits.WriteErrorResponse(w, http.StatusConflict, duplicateErr.Error())
			case errors.Is(err, tabular.ErrFileMissing):
				zap.S().Errorf("alert data file missing: %v", err)
				traits.WriteErrorResponse(w, http.StatusInternalServerError, "alert data file is missing")
			default:
				zap.S().Errorf("alert broadcast failed: %v", err)
				traits.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		traits.WriteResponse(w, map[string]interface{}{
			"message": fmt.Sprintf("Alert recorded for %s (%s km).", stored.Location, stored.Radius),
			"data":    stored,
		})
	}
}
