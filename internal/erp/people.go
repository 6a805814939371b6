package erp

// Recruitment, training and leave entities.

type Vacancy struct {
	Title         string `json:"title"`
	VacancyNumber string `json:"vacancyNumber,omitempty"`
	DepartmentId  int    `json:"departmentId"`
	OfficeId      int    `json:"officeId,omitempty"`
	ClosingDate   string `json:"closingDate,omitempty"`
	Status        string `json:"status"`
}

type Applicant struct {
	VacancyId int    `json:"vacancyId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status"`
}

// Interview is unique per applicant per round.
type Interview struct {
	ApplicantId int    `json:"applicantId"`
	Round       int    `json:"round"`
	ScheduledAt string `json:"scheduledAt,omitempty"`
	Score       int    `json:"score,omitempty"`
	Result      string `json:"result,omitempty"`
}

type TrainingCourse struct {
	CourseName string `json:"courseName"`
	CourseCode string `json:"courseCode"`
	Provider   string `json:"provider,omitempty"`
}

type TrainingSession struct {
	CourseId  int    `json:"courseId"`
	OfficeId  int    `json:"officeId,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Status    string `json:"status"`
}

type LeaveType struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	DaysPerYear int    `json:"daysPerYear"`
}

type LeaveRequest struct {
	EmployeeId  int    `json:"employeeId"`
	LeaveTypeId int    `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Days        int    `json:"days"`
	Status      string `json:"status"`
}

// LeaveBalance is unique per employee per leave type per year.
type LeaveBalance struct {
	EmployeeId  int `json:"employeeId"`
	LeaveTypeId int `json:"leaveTypeId"`
	Year        int `json:"year"`
	Entitled    int `json:"entitled"`
	Taken       int `json:"taken"`
}

func DefaultLeaveTypes() []LeaveType {
	return []LeaveType{
		{Name: "Annual Leave", Code: "AL", DaysPerYear: 20},
		{Name: "Sick Leave", Code: "SL", DaysPerYear: 10},
		{Name: "Maternity Leave", Code: "ML", DaysPerYear: 90},
		{Name: "Paternity Leave", Code: "PL", DaysPerYear: 10},
		{Name: "Hajj Leave", Code: "HL", DaysPerYear: 45},
		{Name: "Unpaid Leave", Code: "UL", DaysPerYear: 0},
	}
}
