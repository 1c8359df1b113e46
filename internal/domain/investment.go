package domain

// CompoundingFrequency is how often interest is credited within a year
type CompoundingFrequency string

const (
	CompoundDaily        CompoundingFrequency = "daily"
	CompoundMonthly      CompoundingFrequency = "monthly"
	CompoundQuarterly    CompoundingFrequency = "quarterly"
	CompoundSemiAnnually CompoundingFrequency = "semi-annually"
	CompoundAnnually     CompoundingFrequency = "annually"
)

// ContributionFrequency is how often an investment contribution is made
type ContributionFrequency string

const (
	ContributeMonthly   ContributionFrequency = "monthly"
	ContributeQuarterly ContributionFrequency = "quarterly"
	ContributeAnnually  ContributionFrequency = "annually"
)

// ContributionTiming places a contribution before or after the period's interest accrual
type ContributionTiming string

const (
	TimingBeginning ContributionTiming = "beginning"
	TimingEnd       ContributionTiming = "end"
)

type InvestmentParams struct {
	StartingAmount        float64               `json:"starting_amount" validate:"gte=0"`
	InvestmentLength      int                   `json:"investment_length" validate:"gte=1,lte=100"`
	AnnualReturnRate      float64               `json:"annual_return_rate" validate:"gte=0,lte=100"`
	CompoundingFrequency  CompoundingFrequency  `json:"compounding_frequency" validate:"required,oneof=daily monthly quarterly semi-annually annually"`
	ContributionAmount    float64               `json:"contribution_amount" validate:"gte=0"`
	ContributionFrequency ContributionFrequency `json:"contribution_frequency" validate:"required,oneof=monthly quarterly annually"`
	ContributionTiming    ContributionTiming    `json:"contribution_timing" validate:"required,oneof=beginning end"`
}

// YearlyBreakdown is one year of an investment schedule
type YearlyBreakdown struct {
	Year                int     `json:"year"`
	StartBalance        float64 `json:"start_balance"`
	Contributions       float64 `json:"contributions"`
	Interest            float64 `json:"interest"`
	EndBalance          float64 `json:"end_balance"`
	ContributionsToDate float64 `json:"contributions_to_date"`
	InterestToDate      float64 `json:"interest_to_date"`
}

type InvestmentResult struct {
	StartingAmount     float64            `json:"starting_amount"`
	TotalContributions float64            `json:"total_contributions"`
	TotalInterest      float64            `json:"total_interest"`
	FinalBalance       float64            `json:"final_balance"`
	Schedule           []*YearlyBreakdown `json:"schedule"`
}

// DefaultInvestmentParams is the projection shown before a user enters anything
func DefaultInvestmentParams() *InvestmentParams {
	return &InvestmentParams{
		StartingAmount:        10000,
		InvestmentLength:      30,
		AnnualReturnRate:      7,
		CompoundingFrequency:  CompoundMonthly,
		ContributionAmount:    500,
		ContributionFrequency: ContributeMonthly,
		ContributionTiming:    TimingEnd,
	}
}
