package schema

// TargetVersion is the schema version a freshly opened store ends up at.
// Bump it when appending a migration.
const TargetVersion = 6

// Migration is a data-described schema diff for one version:
// collections dropped at this version (delete-if-exists, even when not
// recreated) and collections created at this version (create-if-missing).
// Migrations run in version order, cumulatively, from the stored version
// to TargetVersion. A collection lost to Drop loses its records.
type Migration struct {
	Version int
	Drop    []string
	Create  []Collection
}

// Migrations is the full ordered history of the store schema.
// Every collection the record access layer serves must appear here,
// or opening a repo against it fails with ErrNoCollection.
var Migrations = []Migration{
	// v1 — HR core and the shared lookup collections.
	{
		Version: 1,
		Create: []Collection{
			{Name: "departments", Indexes: []Index{uniq("code")},
				SearchFields: []string{"name", "code"}},
			{Name: "offices", Indexes: []Index{uniq("code"), idx("province")},
				SearchFields: []string{"name", "city", "province"}},
			{Name: "grades", Indexes: []Index{uniq("level")},
				SearchFields: []string{"name"}},
			{Name: "jobTitles", Indexes: []Index{idx("departmentId")},
				SearchFields: []string{"title"}},
			{Name: "employees",
				Indexes: []Index{uniq("employeeCode"), idx("departmentId"),
					idx("officeId"), idx("status"), idx("gradeId")},
				SearchFields: []string{"firstName", "lastName", "employeeCode", "email"},
				CodePrefix:   "EMP"},
			{Name: "contracts", Indexes: []Index{idx("employeeId"), idx("status")},
				SearchFields: []string{"contractType"}},
			{Name: "attendance", Indexes: []Index{idx("employeeId")}},
			{Name: "employeeDocuments", Indexes: []Index{idx("employeeId"), idx("category")},
				SearchFields: []string{"title"}},
			{Name: "tempDocuments"},
			{Name: "salaryScales", Indexes: []Index{idx("gradeId")}},
			{Name: "overtimeRecords", Indexes: []Index{idx("employeeId"), idx("status")}},
		},
	},
	// v2 — finance.
	{
		Version: 2,
		Create: []Collection{
			{Name: "banks", Indexes: []Index{uniq("bankCode")},
				SearchFields: []string{"bankName", "bankCode"},
				Defaults:     map[string]any{"isActive": true}},
			{Name: "bankAccounts",
				Indexes:      []Index{uniq("accountNumber"), idx("bankId"), idx("currency")},
				SearchFields: []string{"accountTitle", "accountNumber"},
				Defaults:     map[string]any{"isActive": true}},
			{Name: "chartOfAccounts", Indexes: []Index{uniq("accountCode"), idx("accountType")},
				SearchFields: []string{"accountName", "accountCode"}},
			{Name: "journalEntries",
				Indexes:      []Index{idx("accountCode"), idx("projectId"), idx("status")},
				SearchFields: []string{"description", "reference"},
				CodePrefix:   "JV"},
			{Name: "payrollRecords",
				Indexes: []Index{idx("employeeId"),
					compound("employee_period", true, "employeeId", "period")}},
			{Name: "allowanceTypes", SearchFields: []string{"name"}},
			{Name: "deductionTypes", SearchFields: []string{"name"}},
			{Name: "installmentRequests",
				Indexes:      []Index{idx("projectId"), idx("donorId"), idx("status")},
				SearchFields: []string{"purpose"},
				CodePrefix:   "INS"},
			{Name: "installmentReceipts",
				Indexes: []Index{idx("requestId"), idx("bankAccountId")}},
			{Name: "budgetLines",
				Indexes: []Index{idx("projectId"),
					compound("project_code", true, "projectId", "lineCode")},
				SearchFields: []string{"description", "lineCode"}},
			{Name: "exchangeRates",
				Indexes: []Index{compound("currency_date", true, "currency", "rateDate")}},
			{Name: "advances", Indexes: []Index{idx("employeeId"), idx("status")},
				CodePrefix: "ADV"},
			{Name: "expenseClaims",
				Indexes:      []Index{idx("employeeId"), idx("projectId"), idx("status")},
				SearchFields: []string{"purpose"},
				CodePrefix:   "EXP"},
			{Name: "pettyCashBooks", Indexes: []Index{idx("officeId")}},
			{Name: "fundTransfers",
				Indexes: []Index{idx("fromAccountId"), idx("toAccountId"), idx("status")}},
			{Name: "taxWithholdings", Indexes: []Index{idx("employeeId"), idx("period")}},
		},
	},
	// v3 — procurement and inventory.
	{
		Version: 3,
		Create: []Collection{
			{Name: "vendors", Indexes: []Index{uniq("vendorCode"), idx("status")},
				SearchFields: []string{"vendorName", "vendorCode", "contactPerson"},
				CodePrefix:   "VND"},
			{Name: "purchaseRequests",
				Indexes:      []Index{idx("departmentId"), idx("projectId"), idx("status")},
				SearchFields: []string{"description"},
				CodePrefix:   "PR"},
			{Name: "quotations", Indexes: []Index{idx("purchaseRequestId"), idx("vendorId")}},
			{Name: "purchaseOrders",
				Indexes:      []Index{idx("vendorId"), idx("purchaseRequestId"), idx("status")},
				SearchFields: []string{"description"},
				CodePrefix:   "PO"},
			{Name: "goodsReceivedNotes",
				Indexes: []Index{idx("purchaseOrderId"), idx("receivedBy")}},
			{Name: "inventoryCategories", Indexes: []Index{uniq("code")},
				SearchFields: []string{"name"}},
			{Name: "inventoryItems",
				Indexes:      []Index{uniq("itemCode"), idx("category"), idx("officeId")},
				SearchFields: []string{"itemName", "itemCode"}},
			{Name: "stockMovements",
				Indexes: []Index{idx("itemId"), idx("movementType")}},
			{Name: "assets",
				Indexes:      []Index{uniq("assetTag"), idx("category"), idx("status")},
				SearchFields: []string{"assetName", "assetTag"},
				CodePrefix:   "AST"},
			{Name: "assetAssignments",
				Indexes: []Index{idx("assetId"), idx("employeeId")}},
			{Name: "procurementPlans", Indexes: []Index{idx("projectId"), idx("year")}},
		},
	},
	// v4 — programme and compliance.
	{
		Version: 4,
		Create: []Collection{
			{Name: "donors", Indexes: []Index{uniq("donorCode")},
				SearchFields: []string{"donorName", "donorCode"}},
			{Name: "lineMinistries", Indexes: []Index{uniq("code")},
				SearchFields: []string{"name"}},
			{Name: "projects",
				Indexes: []Index{uniq("projectCode"), idx("donorId"),
					idx("lineMinistryId"), idx("status")},
				SearchFields: []string{"projectName", "projectCode"},
				CodePrefix:   "PRJ"},
			{Name: "projectActivities", Indexes: []Index{idx("projectId"), idx("status")},
				SearchFields: []string{"activityName"}},
			{Name: "projectIndicators", Indexes: []Index{idx("projectId")},
				SearchFields: []string{"indicatorName"}},
			{Name: "projectReports",
				Indexes: []Index{idx("projectId"), idx("reportType"), idx("status")}},
			{Name: "beneficiaries",
				Indexes:      []Index{idx("projectId"), idx("province")},
				SearchFields: []string{"fullName"}},
			{Name: "distributions", Indexes: []Index{idx("projectId"), idx("officeId")}},
			{Name: "fieldVisits", Indexes: []Index{idx("projectId"), idx("visitedBy")}},
			{Name: "mous", Indexes: []Index{idx("lineMinistryId"), idx("status")},
				SearchFields: []string{"title"},
				CodePrefix:   "MOU"},
			{Name: "complianceTasks",
				Indexes:      []Index{idx("category"), idx("status"), idx("assignedTo")},
				SearchFields: []string{"title"}},
			{Name: "complianceDocuments",
				Indexes:      []Index{idx("category"), idx("expiresAt")},
				SearchFields: []string{"title"}},
			{Name: "documentCategories", Indexes: []Index{uniq("code")},
				SearchFields: []string{"name"}},
			{Name: "auditFindings",
				Indexes: []Index{idx("projectId"), idx("severity"), idx("status")},
				SearchFields: []string{"finding"}},
			{Name: "riskRegister", Indexes: []Index{idx("category"), idx("status")},
				SearchFields: []string{"riskDescription"}},
			{Name: "policies", Indexes: []Index{uniq("policyCode")},
				SearchFields: []string{"title", "policyCode"}},
			{Name: "registrations", Indexes: []Index{idx("authority"), idx("status")}},
			{Name: "boardMeetings", Indexes: []Index{idx("status")}},
		},
	},
	// v5 — recruitment, training and leave.
	{
		Version: 5,
		Create: []Collection{
			{Name: "vacancies",
				Indexes:      []Index{uniq("vacancyNumber"), idx("departmentId"), idx("status")},
				SearchFields: []string{"title", "vacancyNumber"},
				CodePrefix:   "VAC"},
			{Name: "applicants",
				Indexes:      []Index{idx("vacancyId"), idx("status")},
				SearchFields: []string{"fullName", "email"}},
			{Name: "interviews",
				Indexes: []Index{idx("applicantId"),
					compound("applicant_round", true, "applicantId", "round")}},
			{Name: "shortlistCriteria", Indexes: []Index{idx("vacancyId")}},
			{Name: "trainingCourses", Indexes: []Index{uniq("courseCode")},
				SearchFields: []string{"courseName", "courseCode"}},
			{Name: "trainingSessions",
				Indexes: []Index{idx("courseId"), idx("officeId"), idx("status")}},
			{Name: "trainingEnrollments",
				Indexes: []Index{idx("sessionId"), idx("employeeId"),
					compound("session_employee", true, "sessionId", "employeeId")}},
			{Name: "leaveTypes", Indexes: []Index{uniq("code")},
				SearchFields: []string{"name"}},
			{Name: "leaveRequests",
				Indexes:    []Index{idx("employeeId"), idx("leaveTypeId"), idx("status")},
				CodePrefix: "LV"},
			{Name: "leaveBalances",
				Indexes: []Index{idx("employeeId"),
					compound("employee_type_year", true, "employeeId", "leaveTypeId", "year")}},
			{Name: "holidays",
				Indexes: []Index{compound("date_office", true, "date", "officeId")}},
		},
	},
	// v6 — HR extended chapters. Drops the never-indexed v1 scratch
	// collections: attendance is recreated as attendanceRecords with a
	// one-record-per-employee-per-day constraint (existing records are
	// lost, the store is a working set, not a system of record);
	// tempDocuments is retired outright.
	{
		Version: 6,
		Drop:    []string{"attendance", "tempDocuments"},
		Create: []Collection{
			{Name: "attendanceRecords",
				Indexes: []Index{idx("employeeId"), idx("date"),
					compound("employee_date", true, "employeeId", "date")}},
			{Name: "performanceReviews",
				Indexes: []Index{idx("employeeId"), idx("reviewPeriod"), idx("status")}},
			{Name: "disciplinaryActions",
				Indexes: []Index{idx("employeeId"), idx("status")}},
			{Name: "exitInterviews", Indexes: []Index{uniq("employeeId")}},
			{Name: "successionPlans", Indexes: []Index{idx("positionId")}},
			{Name: "staffTransfers",
				Indexes: []Index{idx("employeeId"), idx("fromOfficeId"), idx("toOfficeId")}},
		},
	},
}
