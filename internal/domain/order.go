package domain

import "time"

// Stage is a production stage in the fixed workshop sequence.
type Stage string

// Stages is the ordered production sequence from intake to delivery.
// The sequence is linear but transitions are unrestricted: operators may
// set any stage at any time to correct mistakes or skip stages an order
// does not need (e.g. no dyeing).
var Stages = []Stage{
	"With Mom",
	"With Dad",
	"At Dyeing",
	"Back From Dyeing",
	"Lining",
	"Master Marking",
	"Embroidery",
	"Master Cutting",
	"Tailor Stitching",
	"Finished With Vishwa",
	"Delivered",
}

// StageDelivered is the terminal stage; downstream consumers exclude it
// from overdue and urgency buckets.
const StageDelivered Stage = "Delivered"

// FirstStage returns the stage every new order starts in.
func FirstStage() Stage {
	return Stages[0]
}

// IsValidStage reports whether s is a member of the fixed stage list.
func IsValidStage(s Stage) bool {
	for _, candidate := range Stages {
		if candidate == s {
			return true
		}
	}
	return false
}

// Order is a garment order moving through the production stages.
// TailorAssigned is nil while the order has not been handed to a tailor.
type Order struct {
	ID              int64
	OrderNumber     string
	ClientName      string
	Phone           string
	OrderDate       string
	DueDate         string
	NeedsDyeing     bool
	NeedsEmbroidery bool
	NeedsMarket     bool
	MasterAssigned  string
	TailorAssigned  *string
	CurrentStage    Stage
	Comments        string
	LastUpdated     time.Time
}
