package main

import "github.com/spectriclabs/hotcold/internal/app"

func main() {
	app.Run()
}
