package dto

// Summary shapes shared by the nested parts of several responses.

type ProgramSummaryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	StartDate   string `json:"startdate"`
	EndDate     string `json:"enddate"`
}

type ClientSummaryResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type DoctorSummaryResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Role    string `json:"role"`
}
