package domain

// Service is one row of the weekly service roster sheet.
type Service struct {
	Date            string `json:"date"`
	Moderator       string `json:"moderator"`
	Teacher         string `json:"teacher"`
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	WorshipLeader   string `json:"worshipLeader"`
	ChildrenProgram string `json:"childrenProgram"`
	Projector       string `json:"projector"`
	SoundMaster     string `json:"soundMaster"`
	Birthdays       string `json:"birthdays"`
}
