package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"dermacare/models"
)

var (
	clockTimeRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
	isoTimeRegex   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?Z?$`)
)

var validReminderTypes = []string{
	models.ReminderTypeMedication,
	models.ReminderTypeAppointment,
	models.ReminderTypeCustom,
}

var validReminderModes = []string{
	models.ReminderModeRecurring,
	models.ReminderModeOneTime,
}

// validateCreateReminder checks a create payload and returns every problem
// combined into one human-readable message.
func validateCreateReminder(req models.CreateReminderRequest) string {
	var problems []string

	if strings.TrimSpace(req.Title) == "" {
		problems = append(problems, "Title is required and must be a non-empty string")
	} else if len(strings.TrimSpace(req.Title)) > 200 {
		problems = append(problems, "Title cannot exceed 200 characters")
	}

	if !contains(validReminderTypes, req.Type) {
		problems = append(problems, fmt.Sprintf("Type must be one of: %s", strings.Join(validReminderTypes, ", ")))
	}

	mode := req.ReminderMode
	if mode == "" {
		mode = models.ReminderModeRecurring
	}
	if !contains(validReminderModes, mode) {
		problems = append(problems, fmt.Sprintf("Reminder mode must be one of: %s", strings.Join(validReminderModes, ", ")))
	}

	if req.Time == "" {
		problems = append(problems, "Time is required and must be a string")
	} else if !clockTimeRegex.MatchString(req.Time) && !isoTimeRegex.MatchString(req.Time) {
		problems = append(problems, "Time must be in HH:MM:SS format or ISO datetime format")
	}

	switch mode {
	case models.ReminderModeRecurring:
		if len(req.Days) == 0 {
			problems = append(problems, "Days is required for recurring reminders and must be a non-empty array")
		} else if invalid := invalidDays(req.Days); len(invalid) > 0 {
			problems = append(problems, fmt.Sprintf("Invalid days: %s. Valid days are: %s",
				strings.Join(invalid, ", "), strings.Join(models.ValidReminderDays, ", ")))
		}
	case models.ReminderModeOneTime:
		if req.Date == "" {
			problems = append(problems, "Date is required for one-time reminders")
		} else if msg := validateFutureDate(req.Date); msg != "" {
			problems = append(problems, msg)
		}
	}

	if len(req.CustomMessage) > 500 {
		problems = append(problems, "Custom message cannot exceed 500 characters")
	}

	return strings.Join(problems, "; ")
}

// validateUpdateReminder checks a partial update payload.
func validateUpdateReminder(req models.UpdateReminderRequest) string {
	var problems []string

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			problems = append(problems, "Title must be a non-empty string")
		} else if len(strings.TrimSpace(*req.Title)) > 200 {
			problems = append(problems, "Title cannot exceed 200 characters")
		}
	}
	if req.Type != nil && !contains(validReminderTypes, *req.Type) {
		problems = append(problems, fmt.Sprintf("Type must be one of: %s", strings.Join(validReminderTypes, ", ")))
	}
	if req.ReminderMode != nil && !contains(validReminderModes, *req.ReminderMode) {
		problems = append(problems, fmt.Sprintf("Reminder mode must be one of: %s", strings.Join(validReminderModes, ", ")))
	}
	if req.Time != nil && !clockTimeRegex.MatchString(*req.Time) && !isoTimeRegex.MatchString(*req.Time) {
		problems = append(problems, "Time must be in HH:MM:SS format or ISO datetime format")
	}
	if req.Days != nil && len(*req.Days) > 0 {
		if invalid := invalidDays(*req.Days); len(invalid) > 0 {
			problems = append(problems, fmt.Sprintf("Invalid days: %s. Valid days are: %s",
				strings.Join(invalid, ", "), strings.Join(models.ValidReminderDays, ", ")))
		}
	}
	if req.Date != nil {
		if msg := validateFutureDate(*req.Date); msg != "" {
			problems = append(problems, msg)
		}
	}
	if req.CustomMessage != nil && len(*req.CustomMessage) > 500 {
		problems = append(problems, "Custom message cannot exceed 500 characters")
	}

	return strings.Join(problems, "; ")
}

// validateCreateSymptomLog checks a symptom log create payload.
func validateCreateSymptomLog(req models.CreateSymptomLogRequest) string {
	var problems []string

	if req.ItchinessLevel < 1 || req.ItchinessLevel > 10 {
		problems = append(problems, "Itchiness level must be between 1 and 10")
	}
	if strings.TrimSpace(req.AffectedArea) == "" {
		problems = append(problems, "Affected area is required")
	} else if len(strings.TrimSpace(req.AffectedArea)) > 200 {
		problems = append(problems, "Affected area cannot exceed 200 characters")
	}
	if len(req.PossibleTriggers) > 500 {
		problems = append(problems, "Possible triggers cannot exceed 500 characters")
	}
	if len(req.AdditionalNotes) > 1000 {
		problems = append(problems, "Additional notes cannot exceed 1000 characters")
	}

	return strings.Join(problems, "; ")
}

func validateFutureDate(s string) string {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		if parsed, perr := time.Parse(time.RFC3339, s); perr == nil {
			date = parsed
		} else {
			return "Date must be a valid date"
		}
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return "Date must be today or in the future"
	}
	return ""
}

func invalidDays(days []string) []string {
	var invalid []string
	for _, d := range days {
		if !contains(models.ValidReminderDays, strings.ToLower(d)) {
			invalid = append(invalid, d)
		}
	}
	return invalid
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
