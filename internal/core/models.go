package core

type RegisterMessage struct {
	FullName string
	VitID    string
	Email    string
	Password string
}

type SubmissionMessage struct {
	FullName    string
	VitID       string
	PhotoTitle  string
	Theme       string
	Description string
	Filename    string
}
