package service

import (
	"github.com/flexprice/clinicbilling/internal/api/dto"
	"github.com/flexprice/clinicbilling/internal/domain/clinic"
	"github.com/flexprice/clinicbilling/internal/types"
)

// ClinicService builds the clinic metadata stamped on catalog records
type ClinicService interface {
	BuildClinicMetadata(req dto.BuildClinicMetadataRequest) clinic.Metadata
	ResolveTimezone(country, state string) *dto.TimezoneResponse
	CheckDateWindow(date string) *dto.DateWindowResponse
}

type clinicService struct {
	ServiceParams
}

// NewClinicService creates a new clinic service
func NewClinicService(params ServiceParams) ClinicService {
	return &clinicService{
		ServiceParams: params,
	}
}

// BuildClinicMetadata resolves the timezone from the address and records
// terms acceptance at the current time. Other fields are copied unchanged.
func (s *clinicService) BuildClinicMetadata(req dto.BuildClinicMetadataRequest) clinic.Metadata {
	return clinic.Metadata{
		ClinicName:        req.ClinicName,
		ClinicTimezone:    req.Address.Timezone(),
		BuyingGroupMember: req.BuyingGroupMember,
		BuyingGroupName:   req.BuyingGroupName,
		DesiredStartDate:  req.DesiredStartDate,
		TermsAcceptedAt:   clinic.FormatTermsAcceptedAt(s.now()),
	}
}

func (s *clinicService) ResolveTimezone(country, state string) *dto.TimezoneResponse {
	return &dto.TimezoneResponse{
		Country:  country,
		State:    state,
		Timezone: types.ResolveClinicTimezone(country, state),
	}
}

func (s *clinicService) CheckDateWindow(date string) *dto.DateWindowResponse {
	return &dto.DateWindowResponse{
		Date:   date,
		Within: types.IsWithinNextTwoMonthsAt(date, s.now()),
	}
}
