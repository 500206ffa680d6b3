package main

import "careercenter_backend/internal/app"

func main() {
	app.Run()
}
