package simulation

// Warnings flags advisory conditions on a result. A wish that exceeds capacity
// or a term that exceeds the age-derived limit still produces a full result;
// reacting to these flags is the caller's job.
type Warnings struct {
	ExceedsMaxLoan bool `yaml:"exceedsMaxLoan" json:"exceedsMaxLoan"`
	ExceedsMaxTerm bool `yaml:"exceedsMaxTerm" json:"exceedsMaxTerm"`
}

// Result holds the complete outcome of one simulation. Monetary figures are in
// 万円, floor areas in tsubo and square meters.
type Result struct {
	MaxLoanAmount  float64 `yaml:"maxLoanAmount" json:"maxLoanAmount"`
	WishLoanAmount float64 `yaml:"wishLoanAmount" json:"wishLoanAmount"`
	TotalBudget    float64 `yaml:"totalBudget" json:"totalBudget"`
	BuildingBudget float64 `yaml:"buildingBudget" json:"buildingBudget"`
	LandCost       float64 `yaml:"landCost" json:"landCost"`
	DemolitionCost float64 `yaml:"demolitionCost" json:"demolitionCost"`
	MiscCost       float64 `yaml:"miscCost" json:"miscCost"`

	EstimatedTsubo        float64 `yaml:"estimatedTsubo" json:"estimatedTsubo"`
	EstimatedSquareMeters float64 `yaml:"estimatedSquareMeters" json:"estimatedSquareMeters"`

	// UnitPricePerTsubo is the selected tier's base price; the
	// technostructure/insulation adjustments apply only to the area division.
	UnitPricePerTsubo float64 `yaml:"unitPricePerTsubo" json:"unitPricePerTsubo"`

	MonthlyPaymentCapacity float64 `yaml:"monthlyPaymentCapacity" json:"monthlyPaymentCapacity"`
	DTIRatio               float64 `yaml:"dtiRatio" json:"dtiRatio"`
	LoanRatio              float64 `yaml:"loanRatio" json:"loanRatio"`

	TotalPayment         float64 `yaml:"totalPayment" json:"totalPayment"`
	TotalInterest        float64 `yaml:"totalInterest" json:"totalInterest"`
	MaxLoanTotalPayment  float64 `yaml:"maxLoanTotalPayment" json:"maxLoanTotalPayment"`
	MaxLoanTotalInterest float64 `yaml:"maxLoanTotalInterest" json:"maxLoanTotalInterest"`

	ScreeningInterestRate float64 `yaml:"screeningInterestRate" json:"screeningInterestRate"`
	RepaymentInterestRate float64 `yaml:"repaymentInterestRate" json:"repaymentInterestRate"`
	LoanTerm              int     `yaml:"loanTerm" json:"loanTerm"`
	MaxTermYears          int     `yaml:"maxTermYears" json:"maxTermYears"`

	Warnings Warnings `yaml:"warnings" json:"warnings"`
}
