package transcriber

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/notegen/internal/note"
)

var (
	reSrtIndex = regexp.MustCompile(`^\d+$`)
	reSrtTime  = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})[,.](\d{3})`)
)

// parseSRT converts SRT subtitle content into ordered transcript
// segments. Malformed blocks are skipped rather than failing the parse.
func parseSRT(content string) note.Transcript {
	var segments []note.Segment

	var current *note.Segment
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if current != nil && current.Text != "" {
				segments = append(segments, *current)
			}
			current = nil
			continue
		}

		if reSrtIndex.MatchString(trimmed) && current == nil {
			continue
		}

		if m := reSrtTime.FindStringSubmatch(trimmed); m != nil {
			current = &note.Segment{
				Index: len(segments),
				Start: srtTimestamp(m[1], m[2], m[3], m[4]),
				End:   srtTimestamp(m[5], m[6], m[7], m[8]),
			}
			continue
		}

		if current != nil {
			if current.Text != "" {
				current.Text += " "
			}
			current.Text += trimmed
		}
	}
	if current != nil && current.Text != "" {
		segments = append(segments, *current)
	}

	return note.Transcript{Segments: segments}
}

func srtTimestamp(h, m, s, ms string) time.Duration {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
}
