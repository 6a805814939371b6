package erp

// Programme management entities.

type Donor struct {
	DonorName string `json:"donorName"`
	DonorCode string `json:"donorCode"`
	Country   string `json:"country,omitempty"`
}

type LineMinistry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type Project struct {
	ProjectName    string  `json:"projectName"`
	ProjectCode    string  `json:"projectCode,omitempty"`
	DonorId        int     `json:"donorId"`
	LineMinistryId int     `json:"lineMinistryId,omitempty"`
	Budget         float64 `json:"budget,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	StartDate      string  `json:"startDate,omitempty"`
	EndDate        string  `json:"endDate,omitempty"`
	Status         string  `json:"status"`
}

type ProjectActivity struct {
	ProjectId    int    `json:"projectId"`
	ActivityName string `json:"activityName"`
	Status       string `json:"status"`
}

type ProjectReport struct {
	ProjectId  int    `json:"projectId"`
	ReportType string `json:"reportType"`
	Period     string `json:"period"`
	Status     string `json:"status"`
}

type Beneficiary struct {
	ProjectId int    `json:"projectId"`
	FullName  string `json:"fullName"`
	Gender    string `json:"gender,omitempty"`
	Province  string `json:"province,omitempty"`
	District  string `json:"district,omitempty"`
}

type Mou struct {
	Title          string `json:"title"`
	LineMinistryId int    `json:"lineMinistryId"`
	SignedDate     string `json:"signedDate,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	Status         string `json:"status"`
}
