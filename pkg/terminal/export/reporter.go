package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type TableConfig struct {
	LabelWidth  int
	AmountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:  32,
		AmountWidth: 14,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (r *Reporter) Handle(breakdown domain.CostBreakdown) error {
	funcMap := template.FuncMap{
		"row": func(label string, amount decimal.Decimal) string {
			return fmt.Sprintf("| %-*s | %*s |",
				r.config.LabelWidth, label,
				r.config.AmountWidth, "$"+amount.StringFixed(2))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", r.config.LabelWidth+2),
				strings.Repeat("-", r.config.AmountWidth+2))
		},
		"usd": func(amount decimal.Decimal) string {
			return "$" + amount.StringFixed(2)
		},
		"pct": func(rate decimal.Decimal) string {
			return fmt.Sprintf("%.1f%%", rate.InexactFloat64()*100)
		},
	}

	tmpl := `
Cost Estimate {{.ID}}

Procedure: {{.ProcedureID}}
Region: {{.Region}}{{if .Provider}}
Insurance: {{.Provider}} ({{.Insurance.Status}}){{end}}

{{separator}}
{{row "Surgeon fee" .Fees.SurgeonFee}}
{{row "Facility fee" .Fees.FacilityFee}}
{{row "Anesthesia fee" .Fees.AnesthesiaFee}}
{{row "Post-operative care" .Fees.PostOpCareFee}}
{{separator}}
{{row "Total cost" .Fees.Total}}
{{row "Insurance coverage" .Insurance.EstimatedCoverage}}
{{row "Patient responsibility" .Insurance.PatientResponsibility}}
{{separator}}

Payment plans:
{{- range .PaymentPlans}}
  {{.Name}}: {{.DurationMonths}} x {{usd .MonthlyPayment}} at {{pct .InterestRate}} (total {{usd .TotalPaid}})
{{- end}}

Data sources:
{{- range .DataSources}}
  - {{.}}
{{- end}}
`

	t, err := template.New("breakdown").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return t.Execute(r.writer, breakdown)
}
