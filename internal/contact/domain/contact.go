package domain

import "time"

// Role classifies a care-team member's relationship to the patient.
type Role string

const (
	RoleFamily            Role = "family"
	RoleDoctor            Role = "doctor"
	RolePhysicalTherapist Role = "physical_therapist"
	RoleInsuranceProvider Role = "insurance_provider"
	RoleCaregiver         Role = "caregiver"
	RoleOther             Role = "other"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleFamily, RoleDoctor, RolePhysicalTherapist, RoleInsuranceProvider, RoleCaregiver, RoleOther:
		return true
	}
	return false
}

// NotificationType identifies one kind of update a contact can subscribe to.
type NotificationType string

const (
	TypeAnalysisUpdate      NotificationType = "analysis_update"
	TypeWeeklySummary       NotificationType = "weekly_summary"
	TypeDoctorFlag          NotificationType = "doctor_flag"
	TypeProgressMilestone   NotificationType = "progress_milestone"
	TypeExerciseCompletion  NotificationType = "exercise_completion"
	TypeMedicalReport       NotificationType = "medical_report"
	TypeInsuranceUpdate     NotificationType = "insurance_update"
	TypeAppointmentReminder NotificationType = "appointment_reminder"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case TypeAnalysisUpdate, TypeWeeklySummary, TypeDoctorFlag, TypeProgressMilestone,
		TypeExerciseCompletion, TypeMedicalReport, TypeInsuranceUpdate, TypeAppointmentReminder:
		return true
	}
	return false
}

// Frequency is a contact's batching preference. Digest batching is handled
// downstream; this service stores and passes it through.
type Frequency string

const (
	FrequencyRealtime     Frequency = "realtime"
	FrequencyDailyDigest  Frequency = "daily_digest"
	FrequencyWeeklyDigest Frequency = "weekly_digest"
)

// DataAccessLevel gates how much medical detail a rendered message may carry.
// Enforcement happens in the message renderer; the registry stores it intact.
type DataAccessLevel string

const (
	AccessBasic       DataAccessLevel = "basic"
	AccessDetailed    DataAccessLevel = "detailed"
	AccessFullMedical DataAccessLevel = "full_medical"
)

// NotificationPrefs is the per-type opt-in map for one contact.
type NotificationPrefs struct {
	AnalysisUpdate      bool `json:"analysis_update"`
	WeeklySummary       bool `json:"weekly_summary"`
	DoctorFlag          bool `json:"doctor_flag"`
	ProgressMilestone   bool `json:"progress_milestone"`
	ExerciseCompletion  bool `json:"exercise_completion"`
	MedicalReport       bool `json:"medical_report"`
	InsuranceUpdate     bool `json:"insurance_update"`
	AppointmentReminder bool `json:"appointment_reminder"`
}

// DefaultNotificationPrefs returns the opt-ins a new contact starts with.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		AnalysisUpdate: true,
		WeeklySummary:  true,
		DoctorFlag:     true,
	}
}

// Enabled reports whether the contact is opted in to the given type.
func (p NotificationPrefs) Enabled(t NotificationType) bool {
	switch t {
	case TypeAnalysisUpdate:
		return p.AnalysisUpdate
	case TypeWeeklySummary:
		return p.WeeklySummary
	case TypeDoctorFlag:
		return p.DoctorFlag
	case TypeProgressMilestone:
		return p.ProgressMilestone
	case TypeExerciseCompletion:
		return p.ExerciseCompletion
	case TypeMedicalReport:
		return p.MedicalReport
	case TypeInsuranceUpdate:
		return p.InsuranceUpdate
	case TypeAppointmentReminder:
		return p.AppointmentReminder
	}
	return false
}

// Set flips one opt-in by type name.
func (p *NotificationPrefs) Set(t NotificationType, enabled bool) {
	switch t {
	case TypeAnalysisUpdate:
		p.AnalysisUpdate = enabled
	case TypeWeeklySummary:
		p.WeeklySummary = enabled
	case TypeDoctorFlag:
		p.DoctorFlag = enabled
	case TypeProgressMilestone:
		p.ProgressMilestone = enabled
	case TypeExerciseCompletion:
		p.ExerciseCompletion = enabled
	case TypeMedicalReport:
		p.MedicalReport = enabled
	case TypeInsuranceUpdate:
		p.InsuranceUpdate = enabled
	case TypeAppointmentReminder:
		p.AppointmentReminder = enabled
	}
}

// ChannelFlags are the contact's per-channel opt-ins. A channel is only used
// when its flag is set AND the matching reachability field is present, so a
// stale flag can never route to a missing phone or email.
type ChannelFlags struct {
	SMS   bool `json:"sms"`
	Email bool `json:"email"`
}

// Contact represents one care-team member subscribed to one patient.
type Contact struct {
	ID            string            `json:"id" gorm:"primaryKey"`
	UserID        string            `json:"user_id" gorm:"index;not null"`
	Name          string            `json:"name" gorm:"not null"`
	Relationship  string            `json:"relationship"`
	Role          Role              `json:"role"`
	Organization  string            `json:"organization,omitempty"`
	LicenseNumber string            `json:"license_number,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	Notifications NotificationPrefs `json:"notifications" gorm:"embedded;embeddedPrefix:notify_"`
	Channels      ChannelFlags      `json:"channels" gorm:"embedded;embeddedPrefix:channel_"`
	Frequency     Frequency         `json:"frequency" gorm:"default:realtime"`
	DataAccess    DataAccessLevel   `json:"data_access_level" gorm:"default:basic"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// CanReceiveSMS reports live sms eligibility (flag plus phone presence).
func (c *Contact) CanReceiveSMS() bool {
	return c.Channels.SMS && c.Phone != ""
}

// CanReceiveEmail reports live email eligibility (flag plus address presence).
func (c *Contact) CanReceiveEmail() bool {
	return c.Channels.Email && c.Email != ""
}
