package preferences

import (
	"errors"
	"strconv"
	"time"

	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultSettings returns the default Pomodoro schedule.
func DefaultSettings() Settings {
	defaults := model.DefaultTimerConfig()
	return Settings{
		Work:       defaults.Work,
		ShortBreak: defaults.ShortBreak,
		LongBreak:  defaults.LongBreak,
	}
}

// TimerConfig converts settings to a controller configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:       settings.Work,
		ShortBreak: settings.ShortBreak,
		LongBreak:  settings.LongBreak,
	}
}

// RawSettings holds unvalidated text from the preferences form.
type RawSettings struct {
	Work       string
	ShortBreak string
	LongBreak  string
}

// Raw renders settings as whole minutes for the form.
func (settings Settings) Raw() RawSettings {
	return RawSettings{
		Work:       minutesText(settings.Work),
		ShortBreak: minutesText(settings.ShortBreak),
		LongBreak:  minutesText(settings.LongBreak),
	}
}

// Parse validates every field. On error the returned Settings is the zero
// value and the error joins one model.InputError per bad field.
func (raw RawSettings) Parse() (Settings, error) {
	work, workErr := model.ParseMinutes("work", raw.Work, model.WorkBounds)
	short, shortErr := model.ParseMinutes("short_break", raw.ShortBreak, model.ShortBreakBounds)
	long, longErr := model.ParseMinutes("long_break", raw.LongBreak, model.LongBreakBounds)
	if err := errors.Join(workErr, shortErr, longErr); err != nil {
		return Settings{}, err
	}
	return Settings{Work: work, ShortBreak: short, LongBreak: long}, nil
}

func minutesText(value time.Duration) string {
	return strconv.Itoa(int(value / time.Minute))
}
