package damage

import (
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	"github.com/shadowbane/phoenix-aid/pkg/classifier"
	traits "github.com/shadowbane/phoenix-aid/pkg/traits/controller-traits"
)

// maxUploadBytes caps the multipart form kept in memory before
// spilling to disk.
const maxUploadBytes = 32 << 20

// Index handles POST /api/upload-image. The frontend expects the exact
// success/failure shapes of the original API: failures are reported in
// the body with status "error", not as HTTP errors.
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		if !app.Classifier.Available() {
			traits.WriteJSON(w, http.StatusOK, map[string]interface{}{
				"error":    "SatelliteAI not available",
				"message":  "Image analysis module could not be loaded. Please check dependencies.",
				"analysis": nil,
				"status":   "error",
			})
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeFailure(w, err)
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			writeFailure(w, err)
			return
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil {
			writeFailure(w, err)
			return
		}

		classID, err := app.Classifier.Classify(r.Context(), header.Filename, image)
		if err != nil {
			zap.S().Warnf("classifier failed for %s: %v", header.Filename, err)
			writeFailure(w, err)
			return
		}

		traits.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "Image analyzed successfully",
			"analysis":   classifier.Analysis(classID),
			"prediction": classID,
			"status":     "success",
		})
	}
}

func writeFailure(w http.ResponseWriter, err error) {
	traits.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"error":    fmt.Sprintf("Error analyzing image: %v", err),
		"message":  "Failed to analyze image",
		"analysis": nil,
		"status":   "error",
	})
}
