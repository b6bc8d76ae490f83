package main

import "shelf_inventory/cmd"

func main() {
	cmd.Execute()
}
