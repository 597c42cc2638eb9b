package models

import "time"

// OfferStatus mirrors the accepted/declined state recorded on an offer.
type OfferStatus string

// OfferStatusAccepted is the only status written by offer finalization.
const OfferStatusAccepted OfferStatus = "ACCEPTED"

// Offer records a finalized placement for an accepted application.
// Exactly one offer exists per accepted application.
type Offer struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ApplicationID uint        `gorm:"not null;uniqueIndex" json:"application_id"`
	OfferDate     time.Time   `gorm:"not null" json:"offer_date"`
	OfferStatus   OfferStatus `gorm:"size:16;not null" json:"offer_status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
