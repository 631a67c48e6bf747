package service

import (
	"testing"

	"github.com/flexprice/clinicbilling/internal/api/dto"
	"github.com/flexprice/clinicbilling/internal/domain/clinic"
	"github.com/flexprice/clinicbilling/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ClinicServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClinicService
}

func TestClinicService(t *testing.T) {
	suite.Run(t, new(ClinicServiceSuite))
}

func (s *ClinicServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewClinicService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *ClinicServiceSuite) TestBuildClinicMetadata() {
	md := s.service.BuildClinicMetadata(dto.BuildClinicMetadataRequest{
		ClinicName:        "Desert Paws",
		Address:           clinic.Address{Country: "US", State: "AZ", City: "Phoenix"},
		BuyingGroupMember: true,
		BuyingGroupName:   "VetPartners",
		DesiredStartDate:  "2024-02-01",
	})

	s.Equal("Desert Paws", md.ClinicName)
	s.Equal("America/Phoenix", md.ClinicTimezone)
	s.True(md.BuyingGroupMember)
	s.Equal("VetPartners", md.BuyingGroupName)
	s.Equal("2024-02-01", md.DesiredStartDate)
	s.Equal("2024-01-15T12:00:00.000Z", md.TermsAcceptedAt)

	flat := md.ToStripeMetadata()
	s.Equal("true", flat[clinic.KeyBuyingGroupMember])
	s.Equal("America/Phoenix", flat[clinic.KeyClinicTimezone])
}

func (s *ClinicServiceSuite) TestBuildClinicMetadataFallsBack() {
	md := s.service.BuildClinicMetadata(dto.BuildClinicMetadataRequest{
		ClinicName: "Nowhere Vets",
		Address:    clinic.Address{Country: "BR"},
	})
	s.Equal("UTC", md.ClinicTimezone)
	s.False(md.BuyingGroupMember)
	s.Empty(md.DesiredStartDate)

	flat := md.ToStripeMetadata()
	s.NotContains(flat, clinic.KeyBuyingGroupName)
	s.NotContains(flat, clinic.KeyDesiredStartDate)
}

func (s *ClinicServiceSuite) TestResolveTimezone() {
	s.Equal("America/Detroit", s.service.ResolveTimezone("us", " mi ").Timezone)
	s.Equal("Europe/London", s.service.ResolveTimezone("GB", "").Timezone)
	s.Equal("UTC", s.service.ResolveTimezone("", "CA").Timezone)
}

func (s *ClinicServiceSuite) TestCheckDateWindow() {
	// The suite clock is 2024-01-15T12:00:00Z
	s.True(s.service.CheckDateWindow("2024-03-01T00:00:00Z").Within)
	s.True(s.service.CheckDateWindow("2024-03-15T12:00:00Z").Within)
	s.False(s.service.CheckDateWindow("2024-03-15T12:00:01Z").Within)
	s.False(s.service.CheckDateWindow("2024-01-15").Within)
	s.False(s.service.CheckDateWindow("soon").Within)
}
