package main

import (
	"jobboard_backend/internal/app"
)

func main() {
	app.Run()
}
