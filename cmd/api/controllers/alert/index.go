package alert

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	traits "github.com/shadowbane/weather-alert/pkg/traits/controller-traits"
	"go.uber.org/zap"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	"github.com/shadowbane/phoenix-aid/pkg/models"
)

// Index handles GET /api/v1/alerts. The location parameter is matched
// as a case-insensitive substring; omitting it returns every alert.
// A missing or malformed backing file degrades to an empty result set
// with a warning rather than an error, so the rest of the application
// stays usable.
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		query := r.URL.Query().Get("location")

		records, err := app.Registry.Query(query)
		if records == nil {
			records = []models.AlertRecord{}
		}

		payload := map[string]interface{}{
			"data":  records,
			"count": len(records),
		}
		if err != nil {
			zap.S().Warnf("alert data unavailable: %v", err)
			payload["warning"] = err.Error()
		}

		traits.WriteResponse(w, payload)
	}
}
