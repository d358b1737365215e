package service

import (
	"context"
	"fmt"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/carriers/domain"
	"carrier-sales/internal/features/carriers/ports"

	"go.uber.org/zap"
)

// CarrierServiceImpl implements ports.CarrierService.
type CarrierServiceImpl struct {
	registry ports.CarrierRegistry
}

// NewCarrierService creates a new CarrierServiceImpl.
func NewCarrierService(registry ports.CarrierRegistry) *CarrierServiceImpl {
	return &CarrierServiceImpl{
		registry: registry,
	}
}

// Verify looks the carrier up and lists every reason it cannot be booked.
// A carrier is eligible when that list is empty.
func (s *CarrierServiceImpl) Verify(ctx context.Context, mcNumber string) (*domain.Verification, error) {
	mc := domain.NormalizeMC(mcNumber)

	carrier := domain.Unknown(mc)
	if mc != "" {
		found, err := s.registry.Lookup(ctx, mc)
		if err != nil {
			return nil, fmt.Errorf("service: carrier lookup failed: %w", err)
		}
		if found != nil {
			carrier = found
		}
	}

	if carrier.Status == domain.StatusNotFound {
		return &domain.Verification{
			Eligible:    false,
			MCNumber:    mc,
			CarrierName: "Unknown",
			Reasons:     []string{fmt.Sprintf("MC number %s not found in FMCSA database.", mc)},
		}, nil
	}

	reasons := ineligibility(carrier)

	logger.Get().Info("Carrier verified",
		zap.String("mc_number", mc),
		zap.Bool("eligible", len(reasons) == 0),
		zap.Int("reasons", len(reasons)),
	)

	return &domain.Verification{
		Eligible:    len(reasons) == 0,
		MCNumber:    mc,
		CarrierName: carrier.LegalName,
		Reasons:     reasons,
	}, nil
}

func ineligibility(c *domain.Carrier) []string {
	reasons := []string{}

	if c.OutOfService {
		if c.OOSDate != "" {
			reasons = append(reasons, fmt.Sprintf("Carrier is not allowed to operate (OOS since %s).", c.OOSDate))
		} else {
			reasons = append(reasons, "Carrier is not allowed to operate.")
		}
	}
	if c.AuthorityStatus != domain.AuthorityActive {
		reasons = append(reasons, fmt.Sprintf("Authority not active (status: %s).", c.AuthorityStatus))
	}
	if c.BIPDInsuranceOnFile < c.BIPDRequiredAmount {
		reasons = append(reasons, fmt.Sprintf("Insufficient BIPD insurance: $%dk on file, $%dk required.",
			c.BIPDInsuranceOnFile, c.BIPDRequiredAmount))
	}
	if c.MCS150Outdated {
		reasons = append(reasons, "MCS-150 registration is outdated.")
	}

	return reasons
}
