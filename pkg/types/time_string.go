package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (24-часовой формат)
// Хранится как строка с ведущими нулями, поэтому лексикографическое
// сравнение совпадает с хронологическим.
type TimeString string

// EndOfDay граница суток. Может появиться только как конец интервала.
const EndOfDay TimeString = "24:00"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату "HH:MM"
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of day range")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := t.minutes(); err != nil {
		return err
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время, сдвинутое на m минут вперёд.
// Возвращает ErrTimeOutOfRange, если результат выходит за пределы суток
// (граница "24:00" допустима как конец интервала).
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return h*60 + m, nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner. Поддерживает строки, []byte и time.Time
// (колонки TIME драйвер может возвращать любым из этих типов).
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = normalizeScanned(v)
	case []byte:
		*t = normalizeScanned(string(v))
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", value)
	}
	return nil
}

// normalizeScanned обрезает секунды у значений вида "HH:MM:SS"
func normalizeScanned(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
