package main

import "venturenest_backend/internal/app"

func main() {
	app.Run()
}
