package domain

// Account is a bank or card account; a negative balance is a liability
type Account struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type"`
	Balance     float64 `json:"balance"`
	Institution string  `json:"institution,omitempty"`
	Limit       float64 `json:"limit,omitempty"`
}

type Loan struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	OriginalAmount float64 `json:"original_amount" validate:"gte=0"`
	CurrentBalance float64 `json:"current_balance" validate:"gte=0"`
	InterestRate   float64 `json:"interest_rate" validate:"gte=0"`
	MonthlyPayment float64 `json:"monthly_payment" validate:"gte=0"`
	LoanType       string  `json:"loan_type"`
}

type SavingsAccount struct {
	ID                  string  `json:"id" validate:"required"`
	Name                string  `json:"name" validate:"required"`
	CurrentAmount       float64 `json:"current_amount" validate:"gte=0"`
	TargetAmount        float64 `json:"target_amount,omitempty" validate:"gte=0"`
	MonthlyContribution float64 `json:"monthly_contribution" validate:"gte=0"`
	SavingsType         string  `json:"savings_type"`
}

// NetWorthPoint is one value of a net worth history series
type NetWorthPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type NetWorthRequest struct {
	Accounts        []Account        `json:"accounts" validate:"dive"`
	Loans           []Loan           `json:"loans" validate:"dive"`
	SavingsAccounts []SavingsAccount `json:"savings_accounts" validate:"dive"`
	History         []NetWorthPoint  `json:"history,omitempty"`
}

type PeriodChange struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type NetWorthSummary struct {
	NetWorth         float64      `json:"net_worth"`
	TotalAssets      float64      `json:"total_assets"`
	TotalLiabilities float64      `json:"total_liabilities"`
	PeriodChange     PeriodChange `json:"period_change"`
}
