package erp

// HR entities. Structs carry the caller-owned fields; the envelope
// (id, createdAt, updatedAt) is stamped by the access layer.

type Department struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"isActive"`
}

type Office struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	City     string `json:"city"`
	Province string `json:"province"`
	IsActive bool   `json:"isActive"`
}

type Grade struct {
	Name    string  `json:"name"`
	Level   int     `json:"level"`
	MinStep float64 `json:"minStep"`
	MaxStep float64 `json:"maxStep"`
}

type JobTitle struct {
	Title        string `json:"title"`
	DepartmentId int    `json:"departmentId"`
}

type Employee struct {
	EmployeeCode string `json:"employeeCode,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	DepartmentId int    `json:"departmentId,omitempty"`
	OfficeId     int    `json:"officeId,omitempty"`
	GradeId      int    `json:"gradeId,omitempty"`
	JobTitleId   int    `json:"jobTitleId,omitempty"`
	HireDate     string `json:"hireDate,omitempty"`
	Status       string `json:"status,omitempty"`
}

type Contract struct {
	EmployeeId   int     `json:"employeeId"`
	ContractType string  `json:"contractType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate,omitempty"`
	Salary       float64 `json:"salary"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
}

// AttendanceRecord is unique per employee per day (compound index
// employee_date).
type AttendanceRecord struct {
	EmployeeId int    `json:"employeeId"`
	Date       string `json:"date"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	Status     string `json:"status,omitempty"`
}

type PerformanceReview struct {
	EmployeeId   int    `json:"employeeId"`
	ReviewPeriod string `json:"reviewPeriod"`
	Rating       int    `json:"rating,omitempty"`
	ReviewerId   int    `json:"reviewerId,omitempty"`
	Status       string `json:"status"`
}

// DefaultDepartments is the fixed baseline seeded into an empty
// departments collection. The test suite pins the count at six.
func DefaultDepartments() []Department {
	return []Department{
		{Name: "Programs", Code: "PRG", IsActive: true},
		{Name: "Finance", Code: "FIN", IsActive: true},
		{Name: "Human Resources", Code: "HR", IsActive: true},
		{Name: "Procurement & Logistics", Code: "PROC", IsActive: true},
		{Name: "Monitoring & Evaluation", Code: "ME", IsActive: true},
		{Name: "Administration", Code: "ADM", IsActive: true},
	}
}

func DefaultOffices() []Office {
	return []Office{
		{Name: "Head Office", Code: "HQ", City: "Kabul", Province: "Kabul", IsActive: true},
		{Name: "Herat Field Office", Code: "HRT", City: "Herat", Province: "Herat", IsActive: true},
		{Name: "Mazar Field Office", Code: "MZR", City: "Mazar-i-Sharif", Province: "Balkh", IsActive: true},
		{Name: "Jalalabad Field Office", Code: "JLB", City: "Jalalabad", Province: "Nangarhar", IsActive: true},
	}
}

func DefaultGrades() []Grade {
	return []Grade{
		{Name: "Grade A", Level: 1, MinStep: 1500, MaxStep: 2500},
		{Name: "Grade B", Level: 2, MinStep: 1000, MaxStep: 1500},
		{Name: "Grade C", Level: 3, MinStep: 700, MaxStep: 1000},
		{Name: "Grade D", Level: 4, MinStep: 450, MaxStep: 700},
		{Name: "Grade E", Level: 5, MinStep: 250, MaxStep: 450},
	}
}
