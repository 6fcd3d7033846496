package db_models

import "github.com/google/uuid"

// Complaint status labels as shown to users.
const (
	ComplaintStatusSubmitted = "Pateiktas"
	ComplaintStatusReceived  = "Gautas"
	ComplaintStatusReviewed  = "Peržiūrėtas"
	ComplaintStatusResolved  = "Įvykdytas"
	ComplaintStatusRejected  = "Atmestas"
)

type Complaint struct {
	BaseModel
	AccountID uuid.UUID
	Subject   string
	Category  string
	Message   string `gorm:"type:text"`
	Status    string
}
