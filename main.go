package main

import "hive/cmd/app"

func main() {
	app.GetApp().LetsGo()
}
