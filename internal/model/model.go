// Package model defines the wire shapes exchanged with the wellness portal API.
package model

const (
	RolePatient  = "patient"
	RoleProvider = "provider"
)

// User is the authenticated identity returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session pairs the identity with the bearer credential proving it.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// WellnessSnapshot holds aggregated recent-activity averages and the
// per-metric goals to measure them against.
type WellnessSnapshot struct {
	StepsToday    float64 `json:"stepsToday"`
	StepsGoal     float64 `json:"stepsGoal"`
	SleepHours    float64 `json:"sleepHours"`
	SleepGoal     float64 `json:"sleepGoal"`
	ActiveMinutes float64 `json:"activeMinutes"`
	ActiveGoal    float64 `json:"activeGoal"`
	WaterIntake   float64 `json:"waterIntake"`
	WaterGoal     float64 `json:"waterGoal"`
}

// Reminder is a preventive-care reminder, read-only on the patient side.
type Reminder struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
}

// DailyLog is one day's logged wellness goals.
type DailyLog struct {
	ID            string  `json:"id,omitempty"`
	Date          string  `json:"date"`
	Steps         int     `json:"steps"`
	WaterLitres   float64 `json:"waterLitres"`
	SleepHours    float64 `json:"sleepHours"`
	ActiveMinutes int     `json:"activeMinutes"`
	GoalsMet      bool    `json:"goalsMet"`
}

// Profile is the patient record as the profile screen sees it. Email and
// AadharCard are issued at registration and never editable afterwards.
type Profile struct {
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Address            string  `json:"address"`
	AadharCard         string  `json:"aadharCard"`
	Allergies          string  `json:"allergies"`
	CurrentMedications string  `json:"currentMedications"`
	StepsGoal          int     `json:"stepsGoal"`
	ActiveTimeGoal     int     `json:"activeTimeGoal"`
	SleepGoal          float64 `json:"sleepGoal"`
	WaterGoal          float64 `json:"waterGoal"`
}

// ProfileUpdate carries the editable subset of Profile for PUT requests.
type ProfileUpdate struct {
	Name               string  `json:"name" validate:"required"`
	Age                int     `json:"age" validate:"gte=0"`
	Phone              string  `json:"phone" validate:"required"`
	Address            string  `json:"address"`
	Allergies          string  `json:"allergies"`
	CurrentMedications string  `json:"currentMedications"`
	StepsGoal          int     `json:"stepsGoal" validate:"gte=0"`
	ActiveTimeGoal     int     `json:"activeTimeGoal" validate:"gte=0"`
	SleepGoal          float64 `json:"sleepGoal" validate:"gte=0"`
	WaterGoal          float64 `json:"waterGoal" validate:"gte=0"`
}

// HealthTopic is a public health-information article.
type HealthTopic struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// HealthTip is the tip-of-the-day payload.
type HealthTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the register request body. Consent and ConfirmPassword are
// checked client-side and the latter is never sent over the wire.
type Registration struct {
	Name            string `json:"name" validate:"required"`
	Age             int    `json:"age" validate:"gte=0"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Address         string `json:"address"`
	AadharCard      string `json:"aadharCard" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=patient provider"`
	Consent         bool   `json:"consent" validate:"eq=true"`
}

// PatientSummary is one row of a provider's assigned-patient list.
type PatientSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	ComplianceStatus string `json:"complianceStatus"`
}

// PatientOverview is the provider's detail view of a single patient.
type PatientOverview struct {
	Patient   PatientSummary   `json:"patient"`
	Wellness  WellnessSnapshot `json:"wellness"`
	Logs      []DailyLog       `json:"logs"`
	Reminders []Reminder       `json:"reminders"`
}
