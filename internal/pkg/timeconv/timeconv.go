package timeconv

import "time"

// Конвертация между календарными датами и метками времени CoinGecko:
// запросы принимают секунды Unix, ответы приходят в миллисекундах.
// Всегда считаем в UTC — привязка к зоне хоста сдвинула бы каждую
// границу суток на смещение зоны.

const secondsPerDay = 24 * 60 * 60

// DateToUnix — полночь UTC календарной даты в секундах Unix.
// Берутся только год/месяц/день аргумента, зона игнорируется.
func DateToUnix(date time.Time) int64 {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

// MillisToDate — календарная дата UTC, в которую попадает момент времени
// (обрезка до начала суток UTC).
func MillisToDate(epochMillis int64) time.Time {
	t := time.UnixMilli(epochMillis).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween — число полных дней от start до end.
// Для start > end результат отрицательный.
func DaysBetween(start, end time.Time) int {
	return int((DateToUnix(end) - DateToUnix(start)) / secondsPerDay)
}
