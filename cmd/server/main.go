package main

import "refrigeracao-miranda/go_backend/internal/app"

func main() {
	app.Run()
}
