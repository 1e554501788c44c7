package main

import (
	"log"

	"github.com/sms-spam-demo/deploycheck/cmd/deploycheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
