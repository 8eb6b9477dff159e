package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/overpass"
	"github.com/ishaanJ91/landsat/util"
	cli "gopkg.in/urfave/cli.v1"
)

//predictAction runs a single overpass prediction and prints the result as JSON
func predictAction(c *cli.Context) {
	logContext := &(util.BasicLogContext{})

	point := model.GeoPoint{Latitude: c.Float64("lat"), Longitude: c.Float64("lng")}

	start := time.Now().UTC()
	if dateStr := c.String("date"); dateStr != "" {
		var err error
		if start, err = time.Parse(model.DateLayout, dateStr); err != nil {
			util.LogAlert(logContext, fmt.Sprintf("The date value of %v is invalid", dateStr))
			os.Exit(1)
		}
	}

	prediction, err := overpass.Predict(context.Background(), overpass.NewContext(), point, start)
	if err != nil {
		util.LogSimpleErr(logContext, "Prediction failed: ", err)
		os.Exit(1)
	}

	output, _ := json.MarshalIndent(map[string]interface{}{
		"status":           prediction.Status,
		"message":          prediction.Message,
		"path":             prediction.Path,
		"row":              prediction.Row,
		"nextOverpassDate": prediction.PredictedDateString(),
		"nextOverpassTime": prediction.PredictedTime,
	}, "", "  ")
	fmt.Println(string(output))
}
