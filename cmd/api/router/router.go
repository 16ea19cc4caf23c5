package router

import (
	"github.com/julienschmidt/httprouter"

	"github.com/shadowbane/phoenix-aid/cmd/api/controllers/alert"
	chatcontroller "github.com/shadowbane/phoenix-aid/cmd/api/controllers/chat"
	"github.com/shadowbane/phoenix-aid/cmd/api/controllers/damage"
	"github.com/shadowbane/phoenix-aid/cmd/api/controllers/relief"
	"github.com/shadowbane/phoenix-aid/cmd/api/controllers/status"
	"github.com/shadowbane/phoenix-aid/pkg/application"
)

func Api(app *application.Application) *httprouter.Router {
	mux := httprouter.New()

	// Frontend contract (paths fixed by the existing web client)
	mux.POST("/api/chat", chatcontroller.Index(app))
	mux.POST("/api/upload-image", damage.Index(app))
	mux.GET("/api/status", status.Index(app))

	// Alert Registry
	mux.GET("/api/v1/alerts", alert.Index(app))
	mux.POST("/api/v1/alerts", alert.Broadcast(app))

	// Relief Resource Finder
	mux.GET("/api/v1/relief-centers", relief.Index(app))

	return mux
}
