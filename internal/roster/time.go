package roster

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat   = errors.New("时间格式必须为 HH:MM:SS")
	ErrNonPositiveDuration = errors.New("结束时间必须晚于开始时间")
)

// TimeOfDay 表示一天内精确到秒的时刻，班次不允许跨午夜
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	for i, c := range []byte(s) {
		if i == 2 || i == 5 {
			continue
		}
		if c < '0' || c > '9' {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	t := TimeOfDay{
		Hour:   int(s[0]-'0')*10 + int(s[1]-'0'),
		Minute: int(s[3]-'0')*10 + int(s[4]-'0'),
		Second: int(s[6]-'0')*10 + int(s[7]-'0'),
	}

	if t.Hour > 23 || t.Minute > 59 || t.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return t, nil
}

func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Seconds() < other.Seconds()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// DurationHours 计算班次时长（小时），要求 end 晚于 start
func DurationHours(start, end TimeOfDay) (float64, error) {
	if end.Seconds() <= start.Seconds() {
		return 0, ErrNonPositiveDuration
	}
	return float64(end.Seconds()-start.Seconds()) / 3600, nil
}

// Overlaps 使用半开区间语义，一个班次结束时另一个班次刚好开始不算冲突
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
