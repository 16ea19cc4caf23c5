package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	traits "github.com/shadowbane/phoenix-aid/pkg/traits/controller-traits"
)

// FarewellMessage is returned for the "exit" command without invoking
// the chat collaborator.
const FarewellMessage = "Goodbye! Stay safe."

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Index handles POST /api/chat. Collaborator failures are turned into a
// user-facing response string; a failed upstream call never takes the
// service down.
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			traits.WriteJSON(w, http.StatusBadRequest, chatResponse{
				Response: fmt.Sprintf("Error processing message: %v", err),
			})
			return
		}

		if strings.EqualFold(strings.TrimSpace(req.Message), "exit") {
			traits.WriteJSON(w, http.StatusOK, chatResponse{Response: FarewellMessage})
			return
		}

		response, err := app.Chat.Respond(r.Context(), req.Message)
		if err != nil {
			zap.S().Warnf("chat responder failed: %v", err)
			traits.WriteJSON(w, http.StatusOK, chatResponse{
				Response: fmt.Sprintf("Error processing message: %v", err),
			})
			return
		}

		traits.WriteJSON(w, http.StatusOK, chatResponse{Response: response})
	}
}
