package announcement

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Input holds the candidate field values shared by create and update.
// EventDate is the raw form value; validation parses it as YYYY-MM-DD.
type Input struct {
	Title       string
	Description string
	EventVenue  string
	EventDate   string
}

// validate checks the candidate values in a fixed order and fails on the
// first violation. On success it returns the parsed event date,
// normalized to midnight. now supplies the reference date for the
// not-in-the-past rule.
func validate(in Input, now time.Time) (time.Time, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return time.Time{}, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) < TitleMinLen {
		return time.Time{}, ErrTitleTooShort
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return time.Time{}, ErrTitleTooLong
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return time.Time{}, ErrDescriptionRequired
	}
	if utf8.RuneCountInString(desc) < DescriptionMinLen {
		return time.Time{}, ErrDescriptionTooShort
	}
	if utf8.RuneCountInString(desc) > DescriptionMaxLen {
		return time.Time{}, ErrDescriptionTooLong
	}

	if strings.TrimSpace(in.EventVenue) == "" {
		return time.Time{}, ErrVenueRequired
	}

	eventDate, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(in.EventDate), now.Location())
	if err != nil {
		return time.Time{}, ErrEventDateRequired
	}

	if eventDate.Before(DateOnly(now)) {
		return time.Time{}, ErrEventDatePast
	}

	return eventDate, nil
}
