package application

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shadowbane/phoenix-aid/pkg/chat"
	"github.com/shadowbane/phoenix-aid/pkg/classifier"
	"github.com/shadowbane/phoenix-aid/pkg/config"
	"github.com/shadowbane/phoenix-aid/pkg/locator"
	"github.com/shadowbane/phoenix-aid/pkg/registry"
)

type Application struct {
	Cfg *config.Config

	// Core components over the flat tabular store
	Registry *registry.Registry
	Locator  *locator.Locator

	// External collaborators, held as interfaces so controllers can be
	// tested without network access
	Chat       chat.Responder
	Classifier classifier.Predictor
}

func Start() (*Application, error) {
	cfg := config.Load()

	if err := initLogger(cfg.Debug()); err != nil {
		return nil, err
	}

	zap.S().Info("Starting Phoenix AID")

	app := &Application{
		Cfg:        cfg,
		Registry:   registry.New(cfg.GetAlertDataPath()),
		Locator:    locator.New(cfg.GetReliefDataPath()),
		Chat:       chat.NewClientFromEnv(chat.PhoenixInstructions),
		Classifier: classifier.NewClientFromEnv(),
	}

	if !app.Classifier.Available() {
		zap.S().Warn("CLASSIFIER_URL not set; image analysis is disabled")
	}

	return app, nil
}

func initLogger(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	zap.ReplaceGlobals(logger)
	return nil
}
