package main

import (
	"sparklet/internal/app"
	"sparklet/internal/tui"
)

type controllerAPI = tui.Controller

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{})
}

func controller() controllerAPI {
	return controllerFactory()
}
