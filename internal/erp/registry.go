package erp

import (
	"github.com/amanerp/amandb/internal/records"
	"github.com/amanerp/amandb/internal/store"
)

// ERP wires one record repo per served collection, grouped the way the
// source system grouped its chapters. Less prominent collections are
// reachable through Repo(name) instead of a named field.
type ERP struct {
	manager *store.Manager

	HR          HRRepos
	Finance     FinanceRepos
	Procurement ProcurementRepos
	Programme   ProgrammeRepos
	Compliance  ComplianceRepos
	People      PeopleRepos
}

type HRRepos struct {
	Departments *records.Repo
	Offices     *records.Repo
	Grades      *records.Repo
	JobTitles   *records.Repo
	Employees   *records.Repo
	Contracts   *records.Repo
	Attendance  *records.Repo
}

type FinanceRepos struct {
	Banks               *records.Repo
	BankAccounts        *records.Repo
	ChartOfAccounts     *records.Repo
	JournalEntries      *records.Repo
	AllowanceTypes      *records.Repo
	DeductionTypes      *records.Repo
	InstallmentRequests *records.Repo
	InstallmentReceipts *records.Repo
	BudgetLines         *records.Repo
	ExchangeRates       *records.Repo
	ExpenseClaims       *records.Repo
}

type ProcurementRepos struct {
	Vendors             *records.Repo
	PurchaseRequests    *records.Repo
	PurchaseOrders      *records.Repo
	GoodsReceivedNotes  *records.Repo
	InventoryCategories *records.Repo
	InventoryItems      *records.Repo
	StockMovements      *records.Repo
	Assets              *records.Repo
}

type ProgrammeRepos struct {
	Donors         *records.Repo
	LineMinistries *records.Repo
	Projects       *records.Repo
	Activities     *records.Repo
	Reports        *records.Repo
	Beneficiaries  *records.Repo
	Mous           *records.Repo
}

type ComplianceRepos struct {
	Tasks              *records.Repo
	Documents          *records.Repo
	DocumentCategories *records.Repo
	AuditFindings      *records.Repo
	RiskRegister       *records.Repo
}

type PeopleRepos struct {
	Vacancies        *records.Repo
	Applicants       *records.Repo
	Interviews       *records.Repo
	TrainingCourses  *records.Repo
	TrainingSessions *records.Repo
	LeaveTypes       *records.Repo
	LeaveRequests    *records.Repo
	LeaveBalances    *records.Repo
}

type repoBuilder struct {
	manager *store.Manager
	err     error
}

func (b *repoBuilder) repo(name string) *records.Repo {
	if b.err != nil {
		return nil
	}
	r, err := records.NewRepo(b.manager, name)
	if err != nil {
		b.err = err
	}
	return r
}

// New builds the full repo registry. Every named collection is checked
// against the schema catalog up front, so a repo bound to an undeclared
// collection fails here instead of at first use.
func New(manager *store.Manager) (*ERP, error) {
	b := &repoBuilder{manager: manager}

	e := &ERP{
		manager: manager,
		HR: HRRepos{
			Departments: b.repo("departments"),
			Offices:     b.repo("offices"),
			Grades:      b.repo("grades"),
			JobTitles:   b.repo("jobTitles"),
			Employees:   b.repo("employees"),
			Contracts:   b.repo("contracts"),
			Attendance:  b.repo("attendanceRecords"),
		},
		Finance: FinanceRepos{
			Banks:               b.repo("banks"),
			BankAccounts:        b.repo("bankAccounts"),
			ChartOfAccounts:     b.repo("chartOfAccounts"),
			JournalEntries:      b.repo("journalEntries"),
			AllowanceTypes:      b.repo("allowanceTypes"),
			DeductionTypes:      b.repo("deductionTypes"),
			InstallmentRequests: b.repo("installmentRequests"),
			InstallmentReceipts: b.repo("installmentReceipts"),
			BudgetLines:         b.repo("budgetLines"),
			ExchangeRates:       b.repo("exchangeRates"),
			ExpenseClaims:       b.repo("expenseClaims"),
		},
		Procurement: ProcurementRepos{
			Vendors:             b.repo("vendors"),
			PurchaseRequests:    b.repo("purchaseRequests"),
			PurchaseOrders:      b.repo("purchaseOrders"),
			GoodsReceivedNotes:  b.repo("goodsReceivedNotes"),
			InventoryCategories: b.repo("inventoryCategories"),
			InventoryItems:      b.repo("inventoryItems"),
			StockMovements:      b.repo("stockMovements"),
			Assets:              b.repo("assets"),
		},
		Programme: ProgrammeRepos{
			Donors:         b.repo("donors"),
			LineMinistries: b.repo("lineMinistries"),
			Projects:       b.repo("projects"),
			Activities:     b.repo("projectActivities"),
			Reports:        b.repo("projectReports"),
			Beneficiaries:  b.repo("beneficiaries"),
			Mous:           b.repo("mous"),
		},
		Compliance: ComplianceRepos{
			Tasks:              b.repo("complianceTasks"),
			Documents:          b.repo("complianceDocuments"),
			DocumentCategories: b.repo("documentCategories"),
			AuditFindings:      b.repo("auditFindings"),
			RiskRegister:       b.repo("riskRegister"),
		},
		People: PeopleRepos{
			Vacancies:        b.repo("vacancies"),
			Applicants:       b.repo("applicants"),
			Interviews:       b.repo("interviews"),
			TrainingCourses:  b.repo("trainingCourses"),
			TrainingSessions: b.repo("trainingSessions"),
			LeaveTypes:       b.repo("leaveTypes"),
			LeaveRequests:    b.repo("leaveRequests"),
			LeaveBalances:    b.repo("leaveBalances"),
		},
	}

	if b.err != nil {
		return nil, b.err
	}
	return e, nil
}

// Repo opens an ad-hoc repo for a collection without a named field.
func (e *ERP) Repo(name string) (*records.Repo, error) {
	return records.NewRepo(e.manager, name)
}

func seedStructs[T any](r *records.Repo, defaults []T) error {
	recs := make([]records.Record, 0, len(defaults))
	for _, d := range defaults {
		rec, err := records.FromStruct(d)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	return r.SeedDefaults(recs)
}

// SeedAll loads the baseline datasets into the lookup collections.
// Each seed is guarded by the collection's emptiness, so calling this
// on every start is safe.
func (e *ERP) SeedAll() error {
	if err := seedStructs(e.HR.Departments, DefaultDepartments()); err != nil {
		return err
	}
	if err := seedStructs(e.HR.Offices, DefaultOffices()); err != nil {
		return err
	}
	if err := seedStructs(e.HR.Grades, DefaultGrades()); err != nil {
		return err
	}
	if err := seedStructs(e.Finance.AllowanceTypes, DefaultAllowanceTypes()); err != nil {
		return err
	}
	if err := seedStructs(e.Finance.DeductionTypes, DefaultDeductionTypes()); err != nil {
		return err
	}
	if err := seedStructs(e.Procurement.InventoryCategories, DefaultInventoryCategories()); err != nil {
		return err
	}
	if err := seedStructs(e.Compliance.DocumentCategories, DefaultDocumentCategories()); err != nil {
		return err
	}
	return seedStructs(e.People.LeaveTypes, DefaultLeaveTypes())
}
