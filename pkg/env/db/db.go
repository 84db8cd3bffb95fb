package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tendly/tenderchat/pkg/env"
)

type Env struct {
	Driver     DriverType
	Host       string
	Port       int
	Username   string
	Password   string
	Name       string
	AllowWrite bool
}

func NewDBEnv() *Env {
	return &Env{}
}

func (d *Env) Populate() error {
	driver, found := os.LookupEnv("DB_DRIVER")
	if !found {
		return &env.Error{Name: "DB_DRIVER"}
	}
	if !DriverType(driver).IsValid() {
		return fmt.Errorf("unsupported database driver: %s", driver)
	}
	d.Driver = DriverType(driver)

	name, found := os.LookupEnv("DB_NAME")
	if !found {
		return &env.Error{Name: "DB_NAME"}
	}
	d.Name = name

	if s, found := os.LookupEnv("DB_WRITE"); found {
		write, err := strconv.ParseBool(s)
		if err != nil {
			return &env.ConversionError{Name: "DB_WRITE"}
		}
		d.AllowWrite = write
	}

	// SQLite connects to a local file; DB_NAME is the path and the
	// network-related variables do not apply.
	if d.Driver.IsFileBased() {
		return nil
	}

	host, found := os.LookupEnv("DB_HOST")
	if !found {
		return &env.Error{Name: "DB_HOST"}
	}
	d.Host = host

	d.Port = d.Driver.Port()
	if s, found := os.LookupEnv("DB_PORT"); found {
		port, err := strconv.Atoi(s)
		if err != nil {
			return &env.ConversionError{Name: "DB_PORT"}
		}
		d.Port = port
	}

	user, found := os.LookupEnv("DB_USER")
	if !found {
		return &env.Error{Name: "DB_USER"}
	}
	d.Username = user

	pass, found := os.LookupEnv("DB_PASS")
	if !found {
		return &env.Error{Name: "DB_PASS"}
	}
	d.Password = pass

	return nil
}

func (d *Env) ConnectionDSN() string {
	if d.Driver.IsFileBased() {
		return d.Name
	}
	return fmt.Sprintf(d.Driver.Format(),
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.Name,
	)
}
