package main

import "kpiscore/internal/app/server"

func main() {
	server.Run()
}
