package store

import (
	"fmt"
	"strconv"

	"github.com/sadopc/focuscal/internal/session"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// Durations assembles the timer defaults from settings, falling back
// per key to the built-in defaults.
func (s *Store) Durations() session.Durations {
	d := session.DefaultDurations()
	if v, err := s.settingInt("focus_duration"); err == nil {
		d.Focus = v
	}
	if v, err := s.settingInt("short_break_duration"); err == nil {
		d.ShortBreak = v
	}
	if v, err := s.settingInt("long_break_duration"); err == nil {
		d.LongBreak = v
	}
	return d
}

func (s *Store) SetDurations(d session.Durations) error {
	for key, v := range map[string]int{
		"focus_duration":       d.Focus,
		"short_break_duration": d.ShortBreak,
		"long_break_duration":  d.LongBreak,
	} {
		if err := s.SetSetting(key, strconv.Itoa(v)); err != nil {
			return err
		}
	}
	return nil
}

// Owner returns the configured task-owning identity, "" if none.
func (s *Store) Owner() string {
	v, err := s.GetSetting("owner")
	if err != nil {
		return ""
	}
	return v
}

func (s *Store) SetOwner(owner string) error {
	return s.SetSetting("owner", owner)
}

func (s *Store) settingInt(key string) (int, error) {
	v, err := s.GetSetting(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}
