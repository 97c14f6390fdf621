package models

// Goal is the consultation form's "what do you want to achieve" choice.
type Goal string

const (
	GoalCareerChange Goal = "career-change"
	GoalSkillUpgrade Goal = "skill-upgrade"
	GoalFreelancing  Goal = "freelancing"
	GoalStartup      Goal = "startup"
	GoalJobReady     Goal = "job-ready"
	GoalOther        Goal = "other"
)

// Goals lists the goal choices in display order.
var Goals = []Goal{
	GoalCareerChange,
	GoalSkillUpgrade,
	GoalFreelancing,
	GoalStartup,
	GoalJobReady,
	GoalOther,
}

var goalLabels = map[Goal]string{
	GoalCareerChange: "Career Change to Programming",
	GoalSkillUpgrade: "Upgrade My Programming Skills",
	GoalFreelancing:  "Start Freelancing",
	GoalStartup:      "Build My Own Startup",
	GoalJobReady:     "Get Job-Ready Fast",
	GoalOther:        "Other Goals",
}

// Label returns the human readable goal, or the raw value when unknown.
func (g Goal) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

// Valid reports whether g is one of Goals.
func (g Goal) Valid() bool {
	_, ok := goalLabels[g]
	return ok
}

// Represents the consultation form posted from the landing page
type ConsultationForm struct {
	FormID  string `form:"form_id" json:"form_id"`
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required,leademail"`
	Goal    Goal   `form:"goal" json:"goal" validate:"omitempty,goal"`
	Message string `form:"message" json:"message" validate:"max=2000"`
}

// CardLinkForm is the "first lesson free" card-linking form.
type CardLinkForm struct {
	FormID     string `form:"form_id" json:"form_id"`
	Course     string `form:"course" json:"course"`
	CardNumber string `form:"card_number" json:"card_number" validate:"luhn"`
	Expiry     string `form:"expiry" json:"expiry" validate:"expiry"`
	CVV        string `form:"cvv" json:"cvv" validate:"min=3"`
	FirstName  string `form:"first_name" json:"first_name" validate:"min=2"`
	LastName   string `form:"last_name" json:"last_name" validate:"min=2"`
	Email      string `form:"email" json:"email" validate:"leademail"`
	Address    string `form:"address" json:"address" validate:"min=5"`
	City       string `form:"city" json:"city" validate:"min=2"`
	State      string `form:"state" json:"state" validate:"required"`
	Zip        string `form:"zip" json:"zip" validate:"zip"`
}

// NotifyRequest is the body accepted by the notification endpoint.
type NotifyRequest struct {
	Text string `json:"text"`
}

// NotifyResponse is the envelope returned by the notification endpoint.
type NotifyResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// FormatRequest asks for one field to be formatted as the user types.
type FormatRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// FormatResponse carries the formatted value back.
type FormatResponse struct {
	Value string `json:"value"`
}
