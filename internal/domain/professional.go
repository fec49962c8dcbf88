package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

var (
	// ErrUnknownWeekday возвращается для ключа расписания, не являющегося днём недели
	ErrUnknownWeekday = errors.New("domain: unknown weekday")

	// ErrInvalidSlotTime возвращается для времени слота не в формате HH:MM
	ErrInvalidSlotTime = errors.New("domain: invalid slot time")
)

// Professional represents a specialist who performs services
type Professional struct {
	ID             string
	Name           string
	Specialization string
	Availability   WeeklyAvailability
}

// WeeklyAvailability расписание специалиста: день недели (sunday..saturday) -> упорядоченные слоты
// Отсутствующий ключ означает, что в этот день записи нет
type WeeklyAvailability map[string][]types.TimeString

// WeekdayName возвращает название дня недели даты в нижнем регистре ("monday")
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// IsWeekday проверяет, что name - день недели в нижнем регистре
func IsWeekday(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return true
		}
	}
	return false
}

// NormalizeAvailability приводит расписание из запроса к каноничному виду:
// ключи в нижнем регистре, время HH:MM без дубликатов, по возрастанию
func NormalizeAvailability(raw map[string][]string) (WeeklyAvailability, error) {
	result := make(WeeklyAvailability, len(raw))
	for key, times := range raw {
		day := strings.ToLower(strings.TrimSpace(key))
		if !IsWeekday(day) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, key)
		}
		for _, v := range times {
			ts, err := types.NewTimeStringFromString(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %q", ErrInvalidSlotTime, day, v)
			}
			result[day] = append(result[day], ts)
		}
	}
	for day, times := range result {
		result[day] = sortedUnique(times)
	}
	return result, nil
}

// SlotsFor возвращает слоты на день недели даты
// Результат - копия, изменение не затрагивает расписание
func (a WeeklyAvailability) SlotsFor(date time.Time) []types.TimeString {
	times := a[WeekdayName(date)]
	out := make([]types.TimeString, len(times))
	copy(out, times)
	return out
}

// Contains проверяет, что время входит в расписание на дату
func (a WeeklyAvailability) Contains(date time.Time, t types.TimeString) bool {
	for _, slot := range a[WeekdayName(date)] {
		if slot == t {
			return true
		}
	}
	return false
}

// Strings возвращает расписание в виде строк (для ответов API)
func (a WeeklyAvailability) Strings() map[string][]string {
	out := make(map[string][]string, len(a))
	for day, times := range a {
		list := make([]string, 0, len(times))
		for _, t := range times {
			list = append(list, t.String())
		}
		out[day] = list
	}
	return out
}

// Value сериализует расписание в JSONB
func (a WeeklyAvailability) Value() (driver.Value, error) {
	data, err := json.Marshal(a.Strings())
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Scan читает расписание из JSONB
// Поврежденные записи пропускаются: нераспознанный день или время дают пустой список, а не ошибку
func (a *WeeklyAvailability) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*a = WeeklyAvailability{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("domain: unsupported availability type %T", src)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		*a = WeeklyAvailability{}
		return nil
	}

	result := make(WeeklyAvailability, len(entries))
	for key, rawTimes := range entries {
		day := strings.ToLower(strings.TrimSpace(key))
		if !IsWeekday(day) {
			continue
		}
		var times []interface{}
		if err := json.Unmarshal(rawTimes, &times); err != nil {
			continue
		}
		for _, v := range times {
			str, ok := v.(string)
			if !ok {
				continue
			}
			ts, err := types.NewTimeStringFromString(strings.TrimSpace(str))
			if err != nil {
				continue
			}
			result[day] = append(result[day], ts)
		}
	}
	for day, times := range result {
		result[day] = sortedUnique(times)
	}

	*a = result
	return nil
}

func sortedUnique(times []types.TimeString) []types.TimeString {
	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })
	out := make([]types.TimeString, 0, len(times))
	for _, t := range times {
		if len(out) > 0 && out[len(out)-1] == t {
			continue
		}
		out = append(out, t)
	}
	return out
}
