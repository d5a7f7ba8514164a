package validator

import (
	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/report/domain"
)

// Validator checks report specs before any data is fetched for them.
type Validator struct {
	regions config.RegionSet
}

func NewValidator(regions config.RegionSet) *Validator {
	return &Validator{regions: regions}
}

// Validate returns nil when spec carries exactly the fields its kind
// requires, all well formed. The first violated rule is returned as an
// InvalidSpecError.
func (v *Validator) Validate(spec *domain.Spec) error {
	if _, ok := domain.ParseReportKind(string(spec.Kind)); !ok {
		return &domain.InvalidSpecError{Field: "report_type", Reason: "unknown report type"}
	}

	switch spec.Kind {
	case domain.KindEc2Usage:
		if spec.Period == "" {
			return &domain.InvalidSpecError{Field: "report_period", Reason: "required"}
		}

		if _, ok := domain.ParseReportPeriod(string(spec.Period)); !ok {
			return &domain.InvalidSpecError{Field: "report_period", Reason: "unknown report period"}
		}

		return v.validateRegions(spec.Regions)

	case domain.KindRealtimeEc2Usage:
		if spec.Period != "" {
			return &domain.InvalidSpecError{Field: "report_period", Reason: "not allowed for this report type"}
		}

		return v.validateRegions(spec.Regions)

	case domain.KindBilling, domain.KindBudgetNotification:
		if spec.Period != "" {
			return &domain.InvalidSpecError{Field: "report_period", Reason: "not allowed for this report type"}
		}
	}

	return nil
}

func (v *Validator) validateRegions(regions []string) error {
	if len(regions) == 0 {
		return &domain.InvalidSpecError{Field: "report_regions", Reason: "required"}
	}

	for _, region := range regions {
		if !v.regions.Contains(region) {
			return &domain.InvalidSpecError{Field: "report_regions", Reason: "unsupported region " + region}
		}
	}

	return nil
}
