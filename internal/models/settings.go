package models

// StoreSettings holds the MoMo payment details shown at checkout. A single
// document in the settings collection.
type StoreSettings struct {
	MomoNumber       string `bson:"momoNumber" json:"momoNumber"`
	MomoName         string `bson:"momoName" json:"momoName"`
	MomoInstructions string `bson:"momoInstructions" json:"momoInstructions"`
}
