package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	urlbuilder "github.com/bmcszk/go-urlbuilder"
)

func main() {
	app := cli.NewApp()
	app.Name = "urlb"
	app.Usage = "build a URL from a path and an optional base"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "base,b",
			Usage: "base origin to resolve the path against",
		},
		cli.StringFlag{
			Name:  "protocol",
			Usage: "replace the scheme of the built URL",
		},
		cli.StringFlag{
			Name:  "host",
			Usage: "replace the host of the built URL",
		},
		cli.StringFlag{
			Name:  "port",
			Usage: "replace the port of the built URL",
		},
		cli.StringSliceFlag{
			Name:  "query,q",
			Usage: "append a query parameter as key=value (repeatable)",
		},
	}
	app.Action = func(c *cli.Context) {
		if c.NArg() == 0 {
			fmt.Println("Missing path")
			os.Exit(1)
		}
		path := c.Args()[0]

		builder, err := urlbuilder.New(urlbuilder.WithFallbackFromEnv(".env"))
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		var candidate any
		if base := c.String("base"); base != "" {
			candidate = base
		}
		u, err := builder.Create(path, candidate)
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		if protocol := c.String("protocol"); protocol != "" {
			u.SetProtocol(protocol)
		}
		if host := c.String("host"); host != "" {
			u.SetHost(host)
		}
		if port := c.String("port"); port != "" {
			u.SetPort(port)
		}
		for _, pair := range c.StringSlice("query") {
			key, value, _ := strings.Cut(pair, "=")
			u.SetQuery(key, value)
		}

		fmt.Println(u.String())
	}
	app.Run(os.Args) //nolint:errcheck // upstream ignores err
}
