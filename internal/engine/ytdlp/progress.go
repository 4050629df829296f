package ytdlp

import (
	"strconv"
	"strings"
	"time"

	"ytgrab/internal/progress"
)

// ParseProgress parses one tool output line into a typed progress event.
// Lines look like:
//
//	[download]  45.2% of 10.00MiB at  1.50MiB/s ETA 00:04
//	[Merger] Merging formats into "video.mp4"
//	[ExtractAudio] Destination: video.mp3
func ParseProgress(line string) (progress.Event, bool) {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "[Merger]"):
		return progress.Event{Phase: progress.PhaseMerging, Percent: -1, Message: "Merging streams"}, true
	case strings.HasPrefix(line, "[ExtractAudio]"):
		return progress.Event{Phase: progress.PhaseExtracting, Percent: -1, Message: "Extracting audio"}, true
	case strings.HasPrefix(line, "[download]"):
	default:
		return progress.Event{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(line, "[download]"))

	ev := progress.Event{Phase: progress.PhaseDownloading, Percent: -1, Message: "Downloading"}

	if idx := strings.Index(rest, "%"); idx != -1 {
		if p, err := strconv.ParseFloat(strings.TrimSpace(rest[:idx]), 64); err == nil {
			ev.Percent = p
		}
	}

	// "of 10.00MiB" carries the total size.
	if idx := strings.Index(rest, " of "); idx != -1 {
		sizePart := strings.TrimSpace(rest[idx+4:])
		if idx2 := strings.IndexByte(sizePart, ' '); idx2 != -1 {
			sizePart = sizePart[:idx2]
		}
		sizePart = strings.TrimPrefix(sizePart, "~")
		if b, ok := parseSize(sizePart); ok {
			ev.BytesTotal = b
			if ev.Percent >= 0 {
				ev.BytesDone = int64(float64(b) * ev.Percent / 100)
			}
		}
	}

	// "at 1.50MiB/s" is kept verbatim as the rate.
	if idx := strings.Index(rest, " at "); idx != -1 {
		ratePart := strings.TrimSpace(rest[idx+4:])
		if idx2 := strings.IndexByte(ratePart, ' '); idx2 != -1 {
			ratePart = ratePart[:idx2]
		}
		if ratePart != "" && ratePart != "Unknown" {
			ev.Rate = ratePart
		}
	}

	if idx := strings.Index(rest, "ETA "); idx != -1 {
		etaStr := strings.TrimSpace(rest[idx+4:])
		if idx2 := strings.IndexByte(etaStr, ' '); idx2 != -1 {
			etaStr = etaStr[:idx2]
		}
		if d, err := parseClock(etaStr); err == nil {
			ev.ETA = &d
		}
	}

	return ev, true
}

// parseSize converts strings like "10.00MiB" or "512KiB" to bytes.
func parseSize(s string) (int64, bool) {
	units := []struct {
		suffix string
		mult   float64
	}{
		{"GiB", 1 << 30},
		{"MiB", 1 << 20},
		{"KiB", 1 << 10},
		{"GB", 1e9},
		{"MB", 1e6},
		{"KB", 1e3},
		{"B", 1},
	}
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, u.suffix), 64)
			if err != nil {
				return 0, false
			}
			return int64(n * u.mult), true
		}
	}
	return 0, false
}

// parseClock parses durations like "00:04" or "01:23:45".
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0, strconv.ErrSyntax
		}
		return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, strconv.ErrSyntax
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	default:
		sec, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		return time.Duration(sec) * time.Second, nil
	}
}
