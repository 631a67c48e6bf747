package clinic

import (
	"testing"
	"time"

	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestAddressTimezone(t *testing.T) {
	assert.Equal(t, "America/Phoenix", Address{Country: "US", State: "AZ", City: "Tucson"}.Timezone())
	assert.Equal(t, "UTC", Address{}.Timezone())
}

func TestMetadataToStripeMetadata(t *testing.T) {
	accepted := FormatTermsAcceptedAt(time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("EST", -5*3600)))
	assert.Equal(t, "2024-01-15T15:30:00.000Z", accepted)

	md := Metadata{
		ClinicName:        "Happy Paws",
		ClinicTimezone:    "America/Denver",
		BuyingGroupMember: false,
		TermsAcceptedAt:   accepted,
	}.ToStripeMetadata()

	assert.Equal(t, types.Metadata{
		KeyClinicName:        "Happy Paws",
		KeyClinicTimezone:    "America/Denver",
		KeyBuyingGroupMember: "false",
		KeyTermsAcceptedAt:   accepted,
	}, md)

	md = Metadata{
		ClinicName:        "Happy Paws",
		BuyingGroupMember: true,
		BuyingGroupName:   "VetPartners",
		DesiredStartDate:  "2024-02-01",
	}.ToStripeMetadata()
	assert.Equal(t, "true", md[KeyBuyingGroupMember])
	assert.Equal(t, "VetPartners", md[KeyBuyingGroupName])
	assert.Equal(t, "2024-02-01", md[KeyDesiredStartDate])
}
