package academic

import "github.com/goccy/go-json"

// Envelope is the {error, data, message} wrapper the academic API and the
// payment gateway share. Error zero means success.
type Envelope struct {
	Error   int             `json:"error"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type StudentProfile struct {
	StudentID     string `json:"studentID"`
	StudentName   string `json:"studentName"`
	StudentEmail  string `json:"studentEmail"`
	StudentPhone  string `json:"studentPhone"`
	StudentDoB    string `json:"studentDoB"`
	StudentGender int    `json:"studentGender"`
	Address       string `json:"address"`
	StudentStatus int    `json:"studentStatus"`
}
