package model

import "time"

// DateLayout is the format used for calendar dates in results and stored rows
const DateLayout = "2006-01-02"

// PredictionStatus is an enum type for the terminal state of an overpass search
type PredictionStatus string

// StatusSuccess means a scheduled pass was found and projected forward
const StatusSuccess PredictionStatus = "success"

// StatusNotFound means no scheduled pass matched within the search window
const StatusNotFound PredictionStatus = "notfound"

// StatusError means the search aborted on an upstream or format failure
const StatusError PredictionStatus = "error"

// OverpassPrediction is the terminal result of an overpass search
type OverpassPrediction struct {
	Status PredictionStatus
	PathRow
	PredictedDate time.Time
	PredictedTime string
	Message       string
}

// PredictedDateString returns the predicted calendar date, or an empty
// string for non-success results
func (p OverpassPrediction) PredictedDateString() string {
	if p.Status != StatusSuccess {
		return ""
	}
	return p.PredictedDate.Format(DateLayout)
}
