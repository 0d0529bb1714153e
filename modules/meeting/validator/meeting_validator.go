package validator

import (
	"fmt"
	"regexp"

	"timeweave/core/constants"
	"timeweave/core/controller"
	"timeweave/modules/meeting/dto"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// ValidationResult collects field errors for one request.
type ValidationResult struct {
	Errors []controller.ValidationError `json:"errors"`
}

func (r *ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, controller.NewValidationError(field, message))
}

// ValidateCreateMeetingRequest checks request shape; semantic rules such as
// timezone existence and range spans live in the service.
func ValidateCreateMeetingRequest(req *dto.CreateMeetingRequest) *ValidationResult {
	result := &ValidationResult{}

	if req.Title == "" {
		result.add("title", "Tiêu đề là bắt buộc")
	}
	if len(req.Title) > constants.MaxTitleLength {
		result.add("title", fmt.Sprintf("Tiêu đề tối đa %d ký tự", constants.MaxTitleLength))
	}
	if req.DurationMinutes != 0 && (req.DurationMinutes < constants.MinDurationMinutes || req.DurationMinutes > constants.MaxDurationMinutes) {
		result.add("duration_minutes", fmt.Sprintf("Thời lượng phải từ %d đến %d phút", constants.MinDurationMinutes, constants.MaxDurationMinutes))
	}
	if req.StepSizeMinutes != 0 && req.StepSizeMinutes != 15 && req.StepSizeMinutes != 30 && req.StepSizeMinutes != 60 {
		result.add("step_size_minutes", "Bước nhảy phải là 15, 30 hoặc 60 phút")
	}
	if !datePattern.MatchString(req.DateRangeStart) {
		result.add("date_range_start", "Ngày phải có dạng YYYY-MM-DD")
	}
	if !datePattern.MatchString(req.DateRangeEnd) {
		result.add("date_range_end", "Ngày phải có dạng YYYY-MM-DD")
	}
	if req.WorkHoursStart != "" && !clockPattern.MatchString(req.WorkHoursStart) {
		result.add("work_hours_start", "Giờ phải có dạng HH:MM")
	}
	if req.WorkHoursEnd != "" && !clockPattern.MatchString(req.WorkHoursEnd) {
		result.add("work_hours_end", "Giờ phải có dạng HH:MM")
	}
	if req.CreatedByEmail != "" && !emailPattern.MatchString(req.CreatedByEmail) {
		result.add("created_by_email", "Email không hợp lệ")
	}
	for i, p := range req.Participants {
		validateParticipantInput(result, fmt.Sprintf("participants[%d]", i), &p)
	}

	return result
}

// ValidateUpdateMeetingRequest checks only the fields the request sets.
func ValidateUpdateMeetingRequest(req *dto.UpdateMeetingRequest) *ValidationResult {
	result := &ValidationResult{}

	if req.Title != nil {
		if *req.Title == "" {
			result.add("title", "Tiêu đề là bắt buộc")
		}
		if len(*req.Title) > constants.MaxTitleLength {
			result.add("title", fmt.Sprintf("Tiêu đề tối đa %d ký tự", constants.MaxTitleLength))
		}
	}
	if req.DurationMinutes != nil && (*req.DurationMinutes < constants.MinDurationMinutes || *req.DurationMinutes > constants.MaxDurationMinutes) {
		result.add("duration_minutes", fmt.Sprintf("Thời lượng phải từ %d đến %d phút", constants.MinDurationMinutes, constants.MaxDurationMinutes))
	}
	if req.StepSizeMinutes != nil && *req.StepSizeMinutes != 15 && *req.StepSizeMinutes != 30 && *req.StepSizeMinutes != 60 {
		result.add("step_size_minutes", "Bước nhảy phải là 15, 30 hoặc 60 phút")
	}
	if req.DateRangeStart != nil && !datePattern.MatchString(*req.DateRangeStart) {
		result.add("date_range_start", "Ngày phải có dạng YYYY-MM-DD")
	}
	if req.DateRangeEnd != nil && !datePattern.MatchString(*req.DateRangeEnd) {
		result.add("date_range_end", "Ngày phải có dạng YYYY-MM-DD")
	}
	if req.WorkHoursStart != nil && !clockPattern.MatchString(*req.WorkHoursStart) {
		result.add("work_hours_start", "Giờ phải có dạng HH:MM")
	}
	if req.WorkHoursEnd != nil && !clockPattern.MatchString(*req.WorkHoursEnd) {
		result.add("work_hours_end", "Giờ phải có dạng HH:MM")
	}
	if req.CreatedByEmail != nil && *req.CreatedByEmail != "" && !emailPattern.MatchString(*req.CreatedByEmail) {
		result.add("created_by_email", "Email không hợp lệ")
	}

	return result
}

// ValidateParticipantInput checks one invited participant.
func ValidateParticipantInput(req *dto.ParticipantInput) *ValidationResult {
	result := &ValidationResult{}
	validateParticipantInput(result, "", req)
	return result
}

// ValidateBulkParticipantsRequest checks the bulk invite payload.
func ValidateBulkParticipantsRequest(req *dto.BulkParticipantsRequest) *ValidationResult {
	result := &ValidationResult{}

	if len(req.Participants) == 0 {
		result.add("participants", "Danh sách người tham gia không được rỗng")
	}
	for i, p := range req.Participants {
		validateParticipantInput(result, fmt.Sprintf("participants[%d]", i), &p)
	}

	return result
}

// ValidateJoinMeetingRequest checks the public join payload. The name may be
// empty; anonymous participants get a placeholder name.
func ValidateJoinMeetingRequest(req *dto.JoinMeetingRequest) *ValidationResult {
	result := &ValidationResult{}

	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		result.add("email", "Email không hợp lệ")
	}

	return result
}

// ValidateSubmitAvailabilityRequest checks interval shape; time parsing and
// ordering happen in the service where the participant timezone is known.
func ValidateSubmitAvailabilityRequest(req *dto.SubmitAvailabilityRequest) *ValidationResult {
	result := &ValidationResult{}

	for i, interval := range req.BusyIntervals {
		if interval.StartTime == "" {
			result.add(fmt.Sprintf("busy_intervals[%d].start_time", i), "Thời gian bắt đầu là bắt buộc")
		}
		if interval.EndTime == "" {
			result.add(fmt.Sprintf("busy_intervals[%d].end_time", i), "Thời gian kết thúc là bắt buộc")
		}
	}

	return result
}

func validateParticipantInput(result *ValidationResult, prefix string, p *dto.ParticipantInput) {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	if p.Name == "" {
		result.add(field("name"), "Tên là bắt buộc")
	}
	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		result.add(field("email"), "Email không hợp lệ")
	}
}
