// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the landsat-overpass webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "predict",
		Aliases: []string{"p"},
		Usage:   "Predict the next overpass for a point and print the result",
		Flags: []cli.Flag{
			cli.Float64Flag{Name: "lat", Usage: "Latitude of the point"},
			cli.Float64Flag{Name: "lng", Usage: "Longitude of the point"},
			cli.StringFlag{Name: "date", Usage: "Search start date (YYYY-MM-DD, default today)"},
		},
		Action: predictAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the landsat-overpass CLI",
		Action:  versionAction,
	},
	cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Update database schema",
		Action:  migrateDatabaseAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "landsat-overpass"
	app.Usage = "Launch a landsat-overpass process"
	app.Commands = commands
	return
}
