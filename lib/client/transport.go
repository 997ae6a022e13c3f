package client

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Doer issues one HTTP request. Abstracting the transport lets the client run
// against a live server or feed requests straight into the fiber app.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type inProcess struct {
	app *fiber.App
}

// InProcess returns a transport that dispatches requests into app without a
// network socket. The whole simulated stack then runs inside one process.
func InProcess(app *fiber.App) Doer {
	return inProcess{app: app}
}

func (t inProcess) Do(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}
