package status

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	traits "github.com/shadowbane/phoenix-aid/pkg/traits/controller-traits"
)

// Index handles GET /api/status.
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		traits.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":                 "Operational",
			"service":                "Phoenix AID Chatbot",
			"satellite_ai_available": app.Classifier.Available(),
		})
	}
}
