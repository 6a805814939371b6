package erp

// Procurement and inventory entities.

type Vendor struct {
	VendorName    string `json:"vendorName"`
	VendorCode    string `json:"vendorCode,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Status        string `json:"status"`
}

type PurchaseRequest struct {
	DepartmentId int     `json:"departmentId"`
	ProjectId    int     `json:"projectId,omitempty"`
	Description  string  `json:"description"`
	Estimated    float64 `json:"estimated,omitempty"`
	Status       string  `json:"status"`
}

type PurchaseOrder struct {
	VendorId          int     `json:"vendorId"`
	PurchaseRequestId int     `json:"purchaseRequestId"`
	Description       string  `json:"description"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
}

type GoodsReceivedNote struct {
	PurchaseOrderId int    `json:"purchaseOrderId"`
	ReceivedBy      int    `json:"receivedBy"`
	ReceivedDate    string `json:"receivedDate"`
	Remarks         string `json:"remarks,omitempty"`
}

type InventoryCategory struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type InventoryItem struct {
	ItemName string  `json:"itemName"`
	ItemCode string  `json:"itemCode"`
	Category int     `json:"category"`
	OfficeId int     `json:"officeId,omitempty"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

type StockMovement struct {
	ItemId       int     `json:"itemId"`
	MovementType string  `json:"movementType"`
	Quantity     float64 `json:"quantity"`
	MovedAt      string  `json:"movedAt"`
}

type Asset struct {
	AssetName string  `json:"assetName"`
	AssetTag  string  `json:"assetTag"`
	Category  string  `json:"category"`
	Cost      float64 `json:"cost,omitempty"`
	Status    string  `json:"status"`
}

func DefaultInventoryCategories() []InventoryCategory {
	return []InventoryCategory{
		{Name: "Office Supplies", Code: "SUP"},
		{Name: "IT Equipment", Code: "IT"},
		{Name: "Vehicles", Code: "VEH"},
		{Name: "Relief Stock", Code: "RLF"},
		{Name: "Furniture", Code: "FRN"},
	}
}
