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

package util

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables
const (
	WRS_LOOKUP_URL      = "WRS_LOOKUP_URL"
	ACQUISITION_HOST    = "ACQUISITION_HOST"
	SATELLITE_ID        = "SATELLITE_ID"
	OVERPASS_CYCLE_DAYS = "OVERPASS_CYCLE_DAYS"
)

const defaultWRSLookupURL = "https://nimbus.cr.usgs.gov/arcgis/rest/services/LLook_Outlines/MapServer/1/query"
const defaultAcquisitionHost = "https://landsat.usgs.gov"
const defaultSatelliteID = "L9"
const defaultCycleDays = 16

// GetWRSLookupURL returns the spatial query endpoint used to resolve a
// point to its WRS-2 path/row cells
func GetWRSLookupURL() string {
	lookupURL, ok := os.LookupEnv(WRS_LOOKUP_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get explicit WRS lookup URL from the environment. Using default: "+defaultWRSLookupURL)
		lookupURL = defaultWRSLookupURL
	}
	return lookupURL
}

// GetAcquisitionHost returns the host serving the daily pending
// acquisition schedule feed
func GetAcquisitionHost() string {
	host, ok := os.LookupEnv(ACQUISITION_HOST)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get explicit acquisition host from the environment. Using default: "+defaultAcquisitionHost)
		host = defaultAcquisitionHost
	}
	return host
}

// GetSatelliteID returns the satellite identifier used in the acquisition
// schedule feed path
func GetSatelliteID() string {
	satellite, ok := os.LookupEnv(SATELLITE_ID)
	if !ok {
		satellite = defaultSatelliteID
	}
	return satellite
}

// GetCycleDays returns the satellite repeat cycle length in days
func GetCycleDays() int {
	cycleStr, ok := os.LookupEnv(OVERPASS_CYCLE_DAYS)
	if !ok {
		return defaultCycleDays
	}
	cycleDays, err := strconv.Atoi(cycleStr)
	if err != nil || cycleDays < 1 {
		LogAlert(&BasicLogContext{}, fmt.Sprintf("Invalid %s value of %q. Using default of %d.", OVERPASS_CYCLE_DAYS, cycleStr, defaultCycleDays))
		return defaultCycleDays
	}
	return cycleDays
}
