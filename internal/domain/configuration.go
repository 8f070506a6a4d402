package domain

// Configuration is the top-level input file
type Configuration struct {
	Investment InvestmentConfig `yaml:"investment" json:"investment"`
	Language   string           `yaml:"language" json:"language" validate:"omitempty,oneof=fr en"`
	Output     OutputConfig     `yaml:"output" json:"output"`
}

// InvestmentConfig mirrors InvestmentParameters with the frequency kept as its key
type InvestmentConfig struct {
	Initial             float64 `yaml:"initial" json:"initial"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualRate          float64 `yaml:"annual_rate" json:"annual_rate"`
	Variance            float64 `yaml:"variance" json:"variance"`
	Years               float64 `yaml:"years" json:"years"`
	Frequency           string  `yaml:"frequency" json:"frequency"`
}

// OutputConfig selects report formats and where files are written
type OutputConfig struct {
	Formats   []string `yaml:"formats" json:"formats" validate:"dive,required,format"`
	Directory string   `yaml:"directory" json:"directory"`
}

// Parameters converts the investment block into InvestmentParameters
func (ic InvestmentConfig) Parameters() InvestmentParameters {
	return InvestmentParameters{
		Initial:             ic.Initial,
		MonthlyContribution: ic.MonthlyContribution,
		AnnualRatePercent:   ic.AnnualRate,
		VariancePercent:     ic.Variance,
		Years:               ic.Years,
		Frequency:           ParseFrequency(ic.Frequency),
	}
}
