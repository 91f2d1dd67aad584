// Command taste is a recipe discovery app built with Drift. Its home screen
// shows an auto-advancing carousel of recipe cards.
package main

import "github.com/go-drift/drift/pkg/drift"

func main() {
	drift.NewApp(App()).Run()
}
