package dto

import "github.com/aarondl/null/v8"

// HardwareCreationInput is the inventory form. id and createdAt are entered
// by the user even though they look server-assigned.
type HardwareCreationInput struct {
	Type                string      `json:"type"                form:"type"                validate:"required" label:"Type"`
	ID                  string      `json:"id"                  form:"id"                  validate:"required" label:"ID"`
	CreatedAt           string      `json:"createdAt"           form:"createdAt"           validate:"required" label:"CreatedAt"`
	SerialNo            string      `json:"serialNo"            form:"serialNo"            validate:"required" label:"Serial No"`
	PurchaseDate        string      `json:"purchaseDate"        form:"purchaseDate"        validate:"required" label:"Purchase Date"`
	WarrantyEndDate     string      `json:"warrantyEndDate"     form:"warrantyEndDate"     validate:"required" label:"Warranty End Date"`
	Condition           string      `json:"condition"           form:"condition"           validate:"required" label:"Condition"`
	Location            string      `json:"location"            form:"location"            validate:"required" label:"Location"`
	Notes               string      `json:"notes"               form:"notes"               validate:"required" label:"Notes"`
	Manufacturer        string      `json:"manufacturer"        form:"manufacturer"        validate:"required" label:"Manufacturer"`
	Model               string      `json:"model"               form:"model"               validate:"required" label:"Model"`
	AssetTag            string      `json:"assetTag"            form:"assetTag"            validate:"required" label:"Asset Tag"`
	Brand               string      `json:"brand"               form:"brand"               validate:"required" label:"Brand"`
	PurchaseOrderNumber string      `json:"purchaseOrderNumber" form:"purchaseOrderNumber" validate:"required" label:"Purchase Order Number"`
	AssignedDate        string      `json:"assignedDate"        form:"assignedDate"        validate:"required" label:"Assigned Date"`
	RetiredDate         null.String `json:"retiredDate"         form:"retiredDate"                             label:"Retired Date"`
	MaintenanceSchedule string      `json:"maintenanceSchedule" form:"maintenanceSchedule" validate:"required" label:"Maintenance Schedule"`
	AssignedBy          string      `json:"assignedBy"          form:"assignedBy"          validate:"required" label:"Assigned By"`
	LastServiceDate     null.String `json:"lastServiceDate"     form:"lastServiceDate"                         label:"Last Service Date"`
	ReplacementDate     null.String `json:"replacementDate"     form:"replacementDate"                         label:"Replacement Date"`
	SupportContact      string      `json:"supportContact"      form:"supportContact"      validate:"required" label:"Support Contact"`
	DisposalMethod      string      `json:"disposalMethod"      form:"disposalMethod"      validate:"required" label:"Disposal Method"`
}

// HardwareRecord - позиция инвентаря из списка бэкенда, та же форма полей.
type HardwareRecord HardwareCreationInput
