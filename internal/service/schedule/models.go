package schedule

// DayHours настройки одного дня недели (0 = понедельник ... 6 = воскресенье)
type DayHours struct {
	DayOfWeek int
	IsOpen    bool
	OpenTime  string
	CloseTime string
}
