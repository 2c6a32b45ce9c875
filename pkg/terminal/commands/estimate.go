package commands

import (
	"fmt"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/de-tools/care-atlas/pkg/services/catalog"
	"github.com/de-tools/care-atlas/pkg/services/estimate"
	"github.com/de-tools/care-atlas/pkg/services/region"
	"github.com/de-tools/care-atlas/pkg/terminal/export"

	"github.com/spf13/cobra"
)

type EstimateCmd struct {
	procedureID string
	zipCode     string
	provider    string
	catalogPath string
	reporter    *export.Reporter
}

func NewEstimateCmd(reporter *export.Reporter) *cobra.Command {
	ec := &EstimateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the all-in cost of a procedure",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.procedureID, "procedure", "", "Procedure id (e.g., rhinoplasty-001)")
	cmd.Flags().StringVar(&ec.zipCode, "zip", "", "Patient ZIP code")
	cmd.Flags().StringVar(&ec.provider, "provider", "", "Insurance provider name (omit for uninsured)")
	cmd.Flags().StringVar(&ec.catalogPath, "catalog", "", "Path to a catalog override file")

	_ = cmd.MarkFlagRequired("procedure")
	_ = cmd.MarkFlagRequired("zip")

	return cmd
}

func (ec *EstimateCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := catalog.LoadConfig(ec.catalogPath)
	if err != nil {
		return err
	}

	pricingCatalog, err := catalog.NewPricingFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build pricing catalog: %w", err)
	}
	policies, err := catalog.NewPoliciesFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build policy catalog: %w", err)
	}

	calculator := estimate.NewCalculator(
		pricingCatalog,
		policies,
		region.NewResolverWithTable(cfg.ZipRegionTable()),
	)

	breakdown, err := calculator.Quote(ec.procedureID, domain.PatientProfile{
		PatientID: "cli",
		Location:  domain.PatientLocation{ZipCode: ec.zipCode},
		Insurance: domain.PatientInsurance{Provider: ec.provider},
	})
	if err != nil {
		return fmt.Errorf("failed to estimate cost: %w", err)
	}

	return ec.reporter.Handle(breakdown)
}
