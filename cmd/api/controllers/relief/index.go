package relief

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	traits "github.com/shadowbane/weather-alert/pkg/traits/controller-traits"
	"go.uber.org/zap"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	"github.com/shadowbane/phoenix-aid/pkg/locator"
	"github.com/shadowbane/phoenix-aid/pkg/matching"
	"github.com/shadowbane/phoenix-aid/pkg/models"
)

// Index handles GET /api/v1/relief-centers. Fallback-tier results carry
// a notice telling the user which substitution happened, mirroring the
// original finder's messages.
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "query parameter q is required")
			return
		}

		result, err := app.Locator.Search(query)
		centers := result.Centers
		if centers == nil {
			centers = []models.ReliefCenter{}
		}

		payload := map[string]interface{}{
			"data":  centers,
			"count": len(centers),
			"tier":  result.Tier.String(),
		}
		if err != nil {
			zap.S().Warnf("relief center data unavailable: %v", err)
			payload["warning"] = err.Error()
		}

		switch result.Tier {
		case locator.TierProvinceFullPartial:
			payload["notice"] = fmt.Sprintf("No centers found in '%s'. Showing centers in %s instead.",
				matching.TitleCase(query), result.FallbackProvince)
		case locator.TierProvinceCodePartial:
			payload["notice"] = fmt.Sprintf("No centers found in '%s'. Showing province matches instead.",
				matching.TitleCase(query))
		}

		traits.WriteResponse(w, payload)
	}
}
