package domain

import "time"

// Platform identifies a supported ad platform.
type Platform string

const (
	PlatformGoogleAds   Platform = "google_ads"
	PlatformMetaAds     Platform = "meta_ads"
	PlatformTikTokAds   Platform = "tiktok_ads"
	PlatformLinkedInAds Platform = "linkedin_ads"
)

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogleAds, PlatformMetaAds, PlatformTikTokAds, PlatformLinkedInAds:
		return true
	}
	return false
}

// CampaignStatus is the delivery status of a campaign.
type CampaignStatus string

const (
	CampaignActive   CampaignStatus = "ACTIVE"
	CampaignPaused   CampaignStatus = "PAUSED"
	CampaignArchived CampaignStatus = "ARCHIVED"
)

// Campaign represents an advertising campaign running on one platform on
// behalf of a SKU. Budget is stored in integer units (e.g. cents) and is
// only changed after a vendor confirmed the mutation.
type Campaign struct {
	ID         string
	SKUID      string
	Platform   Platform
	AccountID  string
	ExternalID string
	Name       string
	Budget     int64
	Status     CampaignStatus
	// AutoPaused marks campaigns paused by the decision engine. Only those
	// are reactivated automatically; campaigns paused by a user stay paused.
	AutoPaused bool
	// Source is the integrator or platform that created the campaign.
	Source    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Managed reports whether the decision engine may allocate budget to c.
func (c Campaign) Managed() bool {
	switch c.Status {
	case CampaignActive:
		return true
	case CampaignPaused:
		return c.AutoPaused
	}
	return false
}

// CampaignSpec is the vendor-neutral description of a campaign to create.
type CampaignSpec struct {
	Name       string `json:"name"`
	Budget     int64  `json:"budget"`
	Objective  string `json:"objective,omitempty"`
	BudgetType string `json:"budget_type,omitempty"` // daily or lifetime
}

// Target addresses a campaign on a platform. ExternalID is empty when
// creating a campaign.
type Target struct {
	Platform   Platform
	AccountID  string
	ExternalID string
}

// Target returns the vendor address of c.
func (c Campaign) Target() Target {
	return Target{Platform: c.Platform, AccountID: c.AccountID, ExternalID: c.ExternalID}
}
