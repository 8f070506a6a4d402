// Package i18n holds the display strings used by reports in each supported language.
package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// Language identifies a supported display language
type Language string

const (
	FR Language = "fr"
	EN Language = "en"
)

// Default is used when no language, or an unknown one, is requested.
const Default = FR

// Strings is the table of translated labels for one language
type Strings struct {
	Slogan    string
	MainTitle string
	Subtitle  string
	FormTitle string

	LabelInitial  string
	LabelMonthly  string
	LabelRate     string
	LabelVariance string
	LabelYears    string
	LabelFreq     string

	FutureValue        string
	TotalContributions string
	InterestEarned     string
	ReturnPercent      string

	SeriesContributions string
	SeriesInterest      string
	SeriesTotal         string
	SeriesLow           string
	SeriesHigh          string

	YearLabel string // format with the year number

	CSVYear          string
	CSVTotal         string
	CSVContributions string
	CSVInterest      string

	Frequencies map[string]string

	RunFirst string
	Legal    string
}

var tables = map[Language]Strings{
	FR: {
		Slogan:              "Un nouvel Horizon pour vos placements",
		MainTitle:           "Simulateur d'Intérêt Composé",
		Subtitle:            "Visualisez la croissance potentielle de vos investissements avec notre calculateur professionnel",
		FormTitle:           "Paramètres d'investissement (en FCFA)",
		LabelInitial:        "Montant initial",
		LabelMonthly:        "Contribution mensuelle",
		LabelRate:           "Taux d'intérêt annuel (%)",
		LabelVariance:       "Variance du taux (±%)",
		LabelYears:          "Durée (années)",
		LabelFreq:           "Fréquence de capitalisation",
		FutureValue:         "Valeur future",
		TotalContributions:  "Total contributions",
		InterestEarned:      "Intérêts gagnés",
		ReturnPercent:       "Rendement (%)",
		SeriesContributions: "Contributions (base)",
		SeriesInterest:      "Intérêts (base)",
		SeriesTotal:         "Valeur totale (neutre)",
		SeriesLow:           "Valeur (pessimiste)",
		SeriesHigh:          "Valeur (optimiste)",
		YearLabel:           "Année %d",
		CSVYear:             "Année",
		CSVTotal:            "Montant total (FCFA)",
		CSVContributions:    "Contributions cumulées (FCFA)",
		CSVInterest:         "Intérêts (FCFA)",
		Frequencies: map[string]string{
			"daily":      "Quotidienne",
			"monthly":    "Mensuelle",
			"quarterly":  "Trimestrielle",
			"semiannual": "Semestrielle",
			"annual":     "Annuelle",
		},
		RunFirst: "Générer d'abord la simulation (Calculer).",
		Legal:    "Avertissement: Ce calculateur est fourni à titre indicatif uniquement. Les résultats sont des projections basées sur les paramètres saisis et ne constituent pas une garantie de rendement futur. Les performances passées ne préjugent pas des performances futures. Pour des conseils d'investissement personnalisés, veuillez contacter Harvest Asset Management.",
	},
	EN: {
		Slogan:              "A new horizon for your investment",
		MainTitle:           "Compound Interest Simulator",
		Subtitle:            "Visualize the potential growth of your investments with our professional calculator",
		FormTitle:           "Investment parameters (in XAF)",
		LabelInitial:        "Initial amount",
		LabelMonthly:        "Monthly contribution",
		LabelRate:           "Annual interest rate (%)",
		LabelVariance:       "Rate variance (±%)",
		LabelYears:          "Duration (years)",
		LabelFreq:           "Compounding frequency",
		FutureValue:         "Future value",
		TotalContributions:  "Total contributions",
		InterestEarned:      "Interest earned",
		ReturnPercent:       "Return (%)",
		SeriesContributions: "Contributions (base)",
		SeriesInterest:      "Interest (base)",
		SeriesTotal:         "Total value (neutral)",
		SeriesLow:           "Value (pessimistic)",
		SeriesHigh:          "Value (optimistic)",
		YearLabel:           "Year %d",
		CSVYear:             "Year",
		CSVTotal:            "Total amount (XAF)",
		CSVContributions:    "Cumulative contributions (XAF)",
		CSVInterest:         "Interest (XAF)",
		Frequencies: map[string]string{
			"daily":      "Daily",
			"monthly":    "Monthly",
			"quarterly":  "Quarterly",
			"semiannual": "Semi-annual",
			"annual":     "Annual",
		},
		RunFirst: "Run the simulation first (Calculate).",
		Legal:    "Warning: Simulations provided are indicative and do not constitute a guarantee of return. Past performance is not indicative of future results. For more advices, please refer to The Harvest Asset Management.",
	},
}

// Parse resolves a language key, falling back to Default.
func Parse(key string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := tables[l]; ok {
		return l
	}
	return Default
}

// T returns the string table for lang
func T(lang Language) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[Default]
}

// Supported lists the language keys, sorted.
func Supported() []string {
	keys := make([]string, 0, len(tables))
	for k := range tables {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

// Year renders the chart label for a year, e.g. "Année 3".
func (s Strings) Year(n int) string {
	return fmt.Sprintf(s.YearLabel, n)
}

// Frequency renders the display name of a frequency key
func (s Strings) Frequency(key string) string {
	if name, ok := s.Frequencies[key]; ok {
		return name
	}
	return key
}

// CSVHeader returns the header row of the annual breakdown export.
func (s Strings) CSVHeader() []string {
	return []string{s.CSVYear, s.CSVTotal, s.CSVContributions, s.CSVInterest}
}
