package dto

import (
	"github.com/flexprice/clinicbilling/internal/domain/clinic"
	"github.com/flexprice/clinicbilling/internal/types"
)

// BuildClinicMetadataRequest carries the clinic fields stamped on catalog records
type BuildClinicMetadataRequest struct {
	ClinicName        string         `json:"clinic_name" validate:"required,max=255"`
	Address           clinic.Address `json:"address"`
	BuyingGroupMember bool           `json:"buying_group_member"`
	BuyingGroupName   string         `json:"buying_group_name,omitempty" validate:"omitempty,max=255"`
	DesiredStartDate  string         `json:"desired_start_date,omitempty"`
}

// ClinicMetadataResponse returns the built metadata and its flat form
type ClinicMetadataResponse struct {
	Metadata       clinic.Metadata `json:"metadata"`
	StripeMetadata types.Metadata  `json:"stripe_metadata"`
}

// TimezoneResponse is the timezone resolved for an address
type TimezoneResponse struct {
	Country  string `json:"country"`
	State    string `json:"state,omitempty"`
	Timezone string `json:"timezone"`
}

// DateWindowResponse reports whether a date is within the next two months
type DateWindowResponse struct {
	Date   string `json:"date"`
	Within bool   `json:"within_window"`
}
