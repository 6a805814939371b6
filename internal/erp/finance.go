package erp

// Finance entities.

type Bank struct {
	BankName string `json:"bankName"`
	BankCode string `json:"bankCode"`
	SwiftBic string `json:"swiftBic,omitempty"`
	IsActive bool   `json:"isActive"`
}

type BankAccount struct {
	BankId        int    `json:"bankId"`
	AccountTitle  string `json:"accountTitle"`
	AccountNumber string `json:"accountNumber"`
	Currency      string `json:"currency"`
	IsActive      bool   `json:"isActive"`
}

type ChartAccount struct {
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
}

type JournalEntry struct {
	AccountCode string  `json:"accountCode"`
	ProjectId   int     `json:"projectId,omitempty"`
	Description string  `json:"description"`
	Reference   string  `json:"reference,omitempty"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	EntryDate   string  `json:"entryDate"`
	Status      string  `json:"status"`
}

// InstallmentRequest asks a donor for a tranche of project funding;
// receipts are recorded against it and its status moves by caller
// convention (pending -> received), never by this layer.
type InstallmentRequest struct {
	ProjectId       int     `json:"projectId"`
	DonorId         int     `json:"donorId"`
	AmountRequested float64 `json:"amountRequested"`
	Currency        string  `json:"currency"`
	Purpose         string  `json:"purpose,omitempty"`
	Status          string  `json:"status"`
}

type InstallmentReceipt struct {
	RequestId      int     `json:"requestId"`
	BankAccountId  int     `json:"bankAccountId"`
	AmountReceived float64 `json:"amountReceived"`
	ReceivedDate   string  `json:"receivedDate"`
}

type BudgetLine struct {
	ProjectId   int     `json:"projectId"`
	LineCode    string  `json:"lineCode"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

type ExchangeRate struct {
	Currency string  `json:"currency"`
	RateDate string  `json:"rateDate"`
	Rate     float64 `json:"rate"`
}

type ExpenseClaim struct {
	EmployeeId int     `json:"employeeId"`
	ProjectId  int     `json:"projectId,omitempty"`
	Purpose    string  `json:"purpose"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
}

type AllowanceType struct {
	Name    string `json:"name"`
	Taxable bool   `json:"taxable"`
}

type DeductionType struct {
	Name      string `json:"name"`
	Statutory bool   `json:"statutory"`
}

func DefaultAllowanceTypes() []AllowanceType {
	return []AllowanceType{
		{Name: "Transport", Taxable: false},
		{Name: "Housing", Taxable: true},
		{Name: "Hardship", Taxable: false},
		{Name: "Communication", Taxable: false},
	}
}

func DefaultDeductionTypes() []DeductionType {
	return []DeductionType{
		{Name: "Wage Tax", Statutory: true},
		{Name: "Pension", Statutory: true},
		{Name: "Salary Advance Recovery", Statutory: false},
	}
}
