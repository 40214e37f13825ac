package main

import (
	"log"
	"os"

	lib "github.com/awused/wallsplit/lib"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	cleanupErr := lib.Cleanup()
	checkErr(err)
	checkErr(cleanupErr)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "wallsplit"
	app.Usage = "Split one wallpaper into a cropped image for every monitor"
	app.Description = "Writes <monitor name>.<extension> for every connected " +
		"monitor, each cut from the image resized to cover the whole layout"
	app.ArgsUsage = "FILE"
	app.Action = splitAction
	return app
}

func checkErr(err error) {
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
