package erp

// Compliance entities.

type ComplianceTask struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	AssignedTo int    `json:"assignedTo,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	Status     string `json:"status"`
}

type ComplianceDocument struct {
	Title     string `json:"title"`
	Category  int    `json:"category"`
	IssuedAt  string `json:"issuedAt,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type DocumentCategory struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type AuditFinding struct {
	ProjectId int    `json:"projectId,omitempty"`
	Finding   string `json:"finding"`
	Severity  string `json:"severity"`
	Status    string `json:"status"`
}

type Risk struct {
	RiskDescription string `json:"riskDescription"`
	Category        string `json:"category"`
	Likelihood      string `json:"likelihood,omitempty"`
	Impact          string `json:"impact,omitempty"`
	Status          string `json:"status"`
}

func DefaultDocumentCategories() []DocumentCategory {
	return []DocumentCategory{
		{Name: "Registration", Code: "REG"},
		{Name: "Tax Clearance", Code: "TAX"},
		{Name: "Audit Report", Code: "AUD"},
		{Name: "Donor Agreement", Code: "AGR"},
		{Name: "Government Correspondence", Code: "GOV"},
	}
}
