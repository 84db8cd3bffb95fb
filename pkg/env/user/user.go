package user

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tendly/tenderchat/pkg/env"
)

const ExpiryDateLayout = "2006-01-02"

// Env describes who may use the direct SQL endpoint and until when the
// service instance is allowed to run.
type Env struct {
	Expiration time.Time
	Users      []string
}

func NewUserEnv() *Env {
	return &Env{}
}

func (u *Env) Populate() error {
	if path := os.Getenv("USERS_FILE_PATH"); path != "" {
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("unable to read users file: %w", err)
		}
		defer func() { _ = file.Close() }()

		scanner := bufio.NewScanner(file)
		scanner.Split(bufio.ScanLines)
		for scanner.Scan() {
			if s := strings.Trim(scanner.Text(), " "); s != "" {
				u.Users = append(u.Users, s)
			}
		}
	}

	if path := os.Getenv("CONFIG_FILE_PATH"); path != "" {
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("unable to read config file: %w", err)
		}

		var raw struct {
			Expiration string   `json:"expiration"`
			Users      []string `json:"users"`
		}
		if err := json.Unmarshal(content, &raw); err != nil {
			return fmt.Errorf("unable to unmarshal config file: %w", err)
		}

		if raw.Expiration != "" {
			t, err := time.Parse(ExpiryDateLayout, raw.Expiration)
			if err != nil {
				return fmt.Errorf("unable to parse expiration date: %w", err)
			}
			u.Expiration = t
		}
		for _, entry := range raw.Users {
			if s := strings.Trim(entry, " "); s != "" {
				u.Users = append(u.Users, s)
			}
		}
	}

	if users := os.Getenv("AUTHORIZED_USERS"); users != "" {
		ss := strings.Split(users, ",")
		aux := make([]string, 0, len(ss))

		for _, entry := range ss {
			if s := strings.Trim(entry, " "); s != "" {
				aux = append(aux, s)
			}
		}
		u.Users = aux
	}

	if expiration := os.Getenv("EXPIRATION_DATE"); expiration != "" {
		t, err := time.Parse(ExpiryDateLayout, expiration)
		if err != nil {
			return fmt.Errorf("unable to parse expiration date: %w", err)
		}
		u.Expiration = t
	}
	if u.Expiration == (time.Time{}) {
		return &env.Error{Name: "EXPIRATION_DATE"}
	}

	return nil
}

func (u *Env) IsExpired() bool {
	return u.Expiration.Before(time.Now())
}
