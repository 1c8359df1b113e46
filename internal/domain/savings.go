package domain

// SavingsFrequency is how often a savings contribution is deposited
type SavingsFrequency string

const (
	SaveDaily    SavingsFrequency = "daily"
	SaveWeekly   SavingsFrequency = "weekly"
	SaveBiweekly SavingsFrequency = "biweekly"
	SaveMonthly  SavingsFrequency = "monthly"
)

type SavingsGoalData struct {
	GoalAmount            float64              `json:"goal_amount" validate:"gt=0"`
	InitialDeposit        float64              `json:"initial_deposit" validate:"gte=0"`
	ContributionAmount    float64              `json:"contribution_amount" validate:"gte=0"`
	ContributionFrequency SavingsFrequency     `json:"contribution_frequency" validate:"required,oneof=daily weekly biweekly monthly"`
	InterestRate          float64              `json:"interest_rate" validate:"gte=0,lte=100"`
	CompoundingFrequency  CompoundingFrequency `json:"compounding_frequency" validate:"required,oneof=daily monthly quarterly annually"`
}

// MonthlyBreakdown is one month of a savings schedule; month 0 holds the initial deposit
type MonthlyBreakdown struct {
	Month              int     `json:"month"`
	Balance            float64 `json:"balance"`
	Contributions      float64 `json:"contributions"`
	Interest           float64 `json:"interest"`
	ContributionToDate float64 `json:"contribution_to_date"`
	InterestToDate     float64 `json:"interest_to_date"`
}

// ContributionComparison re-expresses one contribution at each frequency
type ContributionComparison struct {
	Daily    float64 `json:"daily"`
	Weekly   float64 `json:"weekly"`
	Biweekly float64 `json:"biweekly"`
	Monthly  float64 `json:"monthly"`
}

// ContributionMonths is the months to goal for each row of a ContributionComparison
type ContributionMonths struct {
	Daily    int `json:"daily"`
	Weekly   int `json:"weekly"`
	Biweekly int `json:"biweekly"`
	Monthly  int `json:"monthly"`
}

type SavingsGoalResult struct {
	GoalReached        bool                   `json:"goal_reached"`
	TimeToGoalMonths   int                    `json:"time_to_goal_months"`
	TimeToGoalWeeks    float64                `json:"time_to_goal_weeks"`
	TimeToGoalDays     float64                `json:"time_to_goal_days"`
	FinalAmount        float64                `json:"final_amount"`
	TotalContributions float64                `json:"total_contributions"`
	TotalInterest      float64                `json:"total_interest"`
	MonthlyBreakdown   []*MonthlyBreakdown    `json:"monthly_breakdown"`
	ComparisonTable    ContributionComparison `json:"comparison_table"`
	ComparisonMonths   ContributionMonths     `json:"comparison_months"`
}

// DefaultSavingsGoal is the goal shown before a user enters anything
func DefaultSavingsGoal() *SavingsGoalData {
	return &SavingsGoalData{
		GoalAmount:            10000,
		InitialDeposit:        1000,
		ContributionAmount:    200,
		ContributionFrequency: SaveMonthly,
		InterestRate:          3,
		CompoundingFrequency:  CompoundMonthly,
	}
}
