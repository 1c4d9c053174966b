package main

import "flexygig/internal/app"

func main() {
	app.Run()
}
