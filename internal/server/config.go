package server

import (
	"github.com/superanalyst/concord/internal/app"
	"github.com/superanalyst/concord/internal/logging"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// AppConfig configures the evaluator behind the API surface.
	AppConfig *app.Config

	// Logger receives request and handler logs. Defaults to a stdout logger.
	Logger logging.Logger
}
