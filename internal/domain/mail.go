package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	PlayerName string `json:"playerName"`
	JobClass   string `json:"jobClass"`
}

type MatchDigestMailData struct {
	PlayerName string           `json:"playerName"`
	WeekLabel  string           `json:"weekLabel"`
	Slots      []DigestSlotData `json:"slots"`
}

type DigestSlotData struct {
	TimeSlot string   `json:"timeSlot"`
	Teams    []string `json:"teams"`
}
