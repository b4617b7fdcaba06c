package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"office-assistant/internal/intent"
	"office-assistant/internal/meeting"
	"office-assistant/internal/model"
)

var hourPattern = regexp.MustCompile(`(\d{1,2})\s*[點:時]`)

const calendarUnavailableReply = "行事曆服務目前未啟用，暫時無法處理會議室預約。"

func (uc *implUseCase) handleMeeting(ctx context.Context, sc model.Scope, result intent.Result, text string) string {
	switch result.Action {
	case "book":
		return uc.meetingBook(ctx, sc, payload(result, text))
	case "cancel":
		return uc.meetingCancel(ctx, sc, payload(result, text))
	default:
		return uc.meetingQuery(ctx, sc)
	}
}

func (uc *implUseCase) meetingBook(ctx context.Context, sc model.Scope, content string) string {
	rooms := uc.meetings.ListRooms(ctx)
	if len(rooms) == 0 {
		return "目前沒有可預約的會議室。"
	}

	room := pickRoom(rooms, content)
	start, end := uc.parseMeetingWindow(content, time.Now())

	subject := fmt.Sprintf("%s 的會議", sc.UserName)
	out, err := uc.meetings.Book(ctx, sc, meeting.BookInput{
		RoomID:    room.ID,
		Subject:   subject,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		if errors.Is(err, meeting.ErrCalendarUnavailable) {
			return calendarUnavailableReply
		}
		if errors.Is(err, meeting.ErrRoomBusy) {
			return fmt.Sprintf("%s 在 %s 已被預約，請換個時段或改用其他會議室。",
				room.Name, start.Format("01/02 15:04"))
		}
		uc.l.Errorf(ctx, "assistant.meetingBook: %v", err)
		return "預約會議室時發生問題，請稍後再試。"
	}

	reply := fmt.Sprintf("已為您預約 %s，%s ~ %s。",
		out.Booking.RoomName,
		out.Booking.StartTime.Format("01/02 15:04"),
		out.Booking.EndTime.Format("15:04"))
	if out.Booking.HTMLLink != "" {
		reply += "\n" + out.Booking.HTMLLink
	}
	return reply
}

func (uc *implUseCase) meetingQuery(ctx context.Context, sc model.Scope) string {
	out, err := uc.meetings.ListBookings(ctx, sc, meeting.ListBookingsInput{})
	if err != nil {
		if errors.Is(err, meeting.ErrCalendarUnavailable) {
			return calendarUnavailableReply
		}
		uc.l.Errorf(ctx, "assistant.meetingQuery: %v", err)
		return "查詢會議時發生問題，請稍後再試。"
	}
	if len(out.Bookings) == 0 {
		return "您近期沒有會議室預約。"
	}

	var b strings.Builder
	b.WriteString("🏢 **您的會議室預約**\n")
	for i, booking := range out.Bookings {
		fmt.Fprintf(&b, "%d. %s %s（%s）\n",
			i+1,
			booking.StartTime.Format("01/02 15:04"),
			booking.Subject,
			booking.RoomName)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (uc *implUseCase) meetingCancel(ctx context.Context, sc model.Scope, content string) string {
	out, err := uc.meetings.ListBookings(ctx, sc, meeting.ListBookingsInput{})
	if err != nil {
		if errors.Is(err, meeting.ErrCalendarUnavailable) {
			return calendarUnavailableReply
		}
		uc.l.Errorf(ctx, "assistant.meetingCancel: %v", err)
		return "查詢會議時發生問題，請稍後再試。"
	}
	if len(out.Bookings) == 0 {
		return "您近期沒有可取消的預約。"
	}

	idx := 1
	if match := indexPattern.FindString(content); match != "" {
		if n, convErr := strconv.Atoi(match); convErr == nil {
			idx = n
		}
	}
	if idx < 1 || idx > len(out.Bookings) {
		return fmt.Sprintf("找不到第 %d 筆預約，請先用「查詢會議」確認編號。", idx)
	}
	if len(out.Bookings) > 1 && indexPattern.FindString(content) == "" {
		return uc.meetingQuery(ctx, sc) + "\n\n請告訴我要取消第幾筆。"
	}

	booking := out.Bookings[idx-1]
	if err := uc.meetings.Cancel(ctx, sc, booking.ID); err != nil {
		uc.l.Errorf(ctx, "assistant.meetingCancel: %v", err)
		return "取消預約時發生問題，請稍後再試。"
	}
	return fmt.Sprintf("已取消 %s 的預約（%s）。", booking.StartTime.Format("01/02 15:04"), booking.RoomName)
}

// pickRoom matches a room by name or ID mention, defaulting to the
// first configured room.
func pickRoom(rooms []model.MeetingRoom, content string) model.MeetingRoom {
	for _, room := range rooms {
		if room.Name != "" && strings.Contains(content, room.Name) {
			return room
		}
		if room.ID != "" && strings.Contains(content, room.ID) {
			return room
		}
	}
	return rooms[0]
}

// parseMeetingWindow extracts a one-hour window from phrases like
// "明天下午三點". Defaults to 10:00 the next day.
func (uc *implUseCase) parseMeetingWindow(content string, now time.Time) (time.Time, time.Time) {
	day, err := uc.dates.Parse(dayKeyword(content), now)
	if err != nil {
		day, _ = uc.dates.Parse("tomorrow", now)
	}

	hour := 10
	if match := hourPattern.FindStringSubmatch(content); match != nil {
		if h, convErr := strconv.Atoi(match[1]); convErr == nil && h >= 0 && h <= 23 {
			hour = h
		}
	}
	if hour < 12 && (strings.Contains(content, "下午") || strings.Contains(content, "晚上")) {
		hour += 12
	}

	start := day.Add(time.Duration(hour) * time.Hour)
	return start, start.Add(time.Hour)
}

// dayKeyword finds the relative-day mention in the text, defaulting to
// tomorrow.
func dayKeyword(content string) string {
	for _, keyword := range []string{"後天", "明天", "今天"} {
		if strings.Contains(content, keyword) {
			return keyword
		}
	}
	return "tomorrow"
}
