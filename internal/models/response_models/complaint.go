package response_models

type Complaint struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}
