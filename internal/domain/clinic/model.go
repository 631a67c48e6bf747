package clinic

import (
	"strconv"
	"time"

	"github.com/flexprice/clinicbilling/internal/types"
)

// Address is the part of a clinic address the billing core reads
type Address struct {
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
	// City is accepted but not used to resolve the timezone
	City string `json:"city,omitempty"`
}

// Timezone resolves the clinic's IANA timezone from its address
func (a Address) Timezone() string {
	return types.ResolveClinicTimezone(a.Country, a.State)
}

// Metadata is attached to the catalog customer, subscription and invoice
type Metadata struct {
	ClinicName        string `json:"clinic_name"`
	ClinicTimezone    string `json:"clinic_timezone"`
	BuyingGroupMember bool   `json:"buying_group_member"`
	BuyingGroupName   string `json:"buying_group_name,omitempty"`
	DesiredStartDate  string `json:"desired_start_date,omitempty"`
	// TermsAcceptedAt is the moment the metadata was built, ISO-8601 UTC
	TermsAcceptedAt string `json:"terms_accepted_at"`
}

// Metadata keys as stored on catalog records
const (
	KeyClinicName        = "clinic_name"
	KeyClinicTimezone    = "clinic_timezone"
	KeyBuyingGroupMember = "buying_group_member"
	KeyBuyingGroupName   = "buying_group_name"
	KeyDesiredStartDate  = "desired_start_date"
	KeyTermsAcceptedAt   = "terms_accepted_at"
)

// TermsAcceptedLayout is ISO-8601 with millisecond precision
const TermsAcceptedLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTermsAcceptedAt renders t the way TermsAcceptedAt stores it
func FormatTermsAcceptedAt(t time.Time) string {
	return t.UTC().Format(TermsAcceptedLayout)
}

// ToStripeMetadata flattens the metadata into the string map the catalog accepts
func (m Metadata) ToStripeMetadata() types.Metadata {
	md := types.Metadata{
		KeyClinicName:        m.ClinicName,
		KeyClinicTimezone:    m.ClinicTimezone,
		KeyBuyingGroupMember: strconv.FormatBool(m.BuyingGroupMember),
		KeyTermsAcceptedAt:   m.TermsAcceptedAt,
	}
	md.SetIfNotEmpty(KeyBuyingGroupName, m.BuyingGroupName)
	md.SetIfNotEmpty(KeyDesiredStartDate, m.DesiredStartDate)
	return md
}
