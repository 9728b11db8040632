// Package meeting allocates video consultation links. Rooms are plain Jitsi
// style URLs: anyone holding the link can join, so the room name carries the
// only entropy.
package meeting

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"opdflow/config"
)

// Service hands out a fresh meeting link per video appointment.
type Service interface {
	AllocateLink() string
}

// DefaultMeetingService builds links off the configured meeting base URL.
type DefaultMeetingService struct {
	BaseURL string
}

// NewMeetingService reads the base URL from the loaded application config.
func NewMeetingService() *DefaultMeetingService {
	return &DefaultMeetingService{BaseURL: config.AppConfig.MeetingBaseURL}
}

// AllocateLink returns a unique room URL under the base host.
func (s *DefaultMeetingService) AllocateLink() string {
	base := strings.TrimRight(s.BaseURL, "/")
	return fmt.Sprintf("%s/opdflow-%s", base, uuid.New().String())
}
