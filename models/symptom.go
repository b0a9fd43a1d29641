package models

import "time"

// SymptomLog is one eczema symptom logging entry.
type SymptomLog struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	ItchinessLevel   int       `bson:"itchinessLevel" json:"itchinessLevel"` // 1..10
	AffectedArea     string    `bson:"affectedArea" json:"affectedArea"`
	PossibleTriggers string    `bson:"possibleTriggers" json:"possibleTriggers"`
	AdditionalNotes  string    `bson:"additionalNotes" json:"additionalNotes"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateSymptomLogRequest is the payload for POST /api/symptoms.
type CreateSymptomLogRequest struct {
	ItchinessLevel   int    `json:"itchinessLevel"`
	AffectedArea     string `json:"affectedArea"`
	PossibleTriggers string `json:"possibleTriggers"`
	AdditionalNotes  string `json:"additionalNotes"`
}

// UpdateSymptomLogRequest is the payload for PUT /api/symptoms/:id.
type UpdateSymptomLogRequest struct {
	ItchinessLevel   *int    `json:"itchinessLevel"`
	AffectedArea     *string `json:"affectedArea"`
	PossibleTriggers *string `json:"possibleTriggers"`
	AdditionalNotes  *string `json:"additionalNotes"`
}
